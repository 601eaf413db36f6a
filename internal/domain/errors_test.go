package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("cookie", "must not be empty")

	if got := err.Error(); got != "validation: cookie: must not be empty" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "word", Message: "required"},
		{Field: "lang", Message: "required"},
	}}

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestUpstreamError_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("jbovlaste: fetch: %w", &UpstreamError{URL: "http://x/xml.html", StatusCode: 503})

	if !errors.Is(err, ErrUpstream) {
		t.Fatal("errors.Is(err, ErrUpstream) = false")
	}

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatal("errors.As(err, *UpstreamError) = false")
	}
	if upErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", upErr.StatusCode)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrValidation, ErrUpstream}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
