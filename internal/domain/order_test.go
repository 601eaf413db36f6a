package domain

import (
	"slices"
	"testing"
)

func TestOrderLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		favored []string
		present []string
		want    []string
	}{
		{
			name:    "favored first then alphabetical",
			favored: []string{"en", "jbo"},
			present: []string{"es", "en", "jbo", "fr"},
			want:    []string{"en", "jbo", "es", "fr"},
		},
		{
			name:    "favored order wins over alphabetical",
			favored: []string{"jbo", "en"},
			present: []string{"en", "jbo"},
			want:    []string{"jbo", "en"},
		},
		{
			name:    "missing favored languages skipped",
			favored: []string{"en", "jbo", "de", "es", "fr", "ru"},
			present: []string{"ru", "zh", "ja"},
			want:    []string{"ru", "ja", "zh"},
		},
		{
			name:    "no favored",
			favored: nil,
			present: []string{"fr", "de", "en"},
			want:    []string{"de", "en", "fr"},
		},
		{
			name:    "nothing present",
			favored: []string{"en"},
			present: nil,
			want:    []string{},
		},
		{
			name:    "duplicates collapsed",
			favored: []string{"en", "en"},
			present: []string{"en", "fr", "fr"},
			want:    []string{"en", "fr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderLanguages(tt.favored, tt.present)
			if !slices.Equal(got, tt.want) {
				t.Errorf("OrderLanguages(%v, %v) = %v, want %v", tt.favored, tt.present, got, tt.want)
			}
		})
	}
}

func TestRecord_Languages(t *testing.T) {
	t.Parallel()

	r := Record{Definitions: map[string]Definition{"en": {}, "jbo": {}}}

	got := r.Languages()
	slices.Sort(got)
	if !slices.Equal(got, []string{"en", "jbo"}) {
		t.Errorf("Languages() = %v", got)
	}
}
