package domain

// Placeholder values written when an export carries no data for a field.
const (
	NoRafsi      = "No rafsi."
	NoGlosses    = "No glosses."
	NoDefinition = "No definition."
	NoNotes      = "No notes."
	NoExamples   = "No examples."
)

// Definition is the normalized per-language data for one word.
type Definition struct {
	// PlaceStructure is the definition text with place markers rewritten to xN.
	PlaceStructure string
	Notes          []string
	// Glosses holds plain glosses (sorted) followed by place-tagged ones (sorted).
	Glosses []string
}

// Record is one merged dictionary entry across all languages.
type Record struct {
	Word string
	// Rafsi comes from the first language that introduced the word.
	Rafsi    []string
	Examples string
	// Definitions maps a language code to that language's definition.
	Definitions map[string]Definition
}

// Languages returns the language codes present in the record, in no
// particular order.
func (r Record) Languages() []string {
	langs := make([]string, 0, len(r.Definitions))
	for lang := range r.Definitions {
		langs = append(langs, lang)
	}
	return langs
}
