package domain

import (
	"errors"
	"testing"
)

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{name: "all", filter: AllQuotes()},
		{name: "category", filter: ByCategory("love")},
		{name: "author", filter: ByAuthor("Seneca")},
		{name: "blank category", filter: ByCategory("   "), wantErr: true},
		{name: "blank author", filter: ByAuthor(""), wantErr: true},
		{name: "value without mode", filter: Filter{Value: "x"}, wantErr: true},
		{name: "unknown mode", filter: Filter{Mode: FilterMode(9), Value: "x"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidFilter) {
					t.Fatalf("expected ErrInvalidFilter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFilterKey_NormalizesValue(t *testing.T) {
	if got := ByCategory("  Love ").Key(); got != "category:love" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := ByAuthor("Seneca").Key(); got != "author:seneca" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := AllQuotes().Key(); got != "all" {
		t.Fatalf("unexpected key: %q", got)
	}
	if ByCategory("x").Key() == ByAuthor("x").Key() {
		t.Fatalf("category and author keys must differ")
	}
}

func TestParseFilterMode_RoundTrip(t *testing.T) {
	for _, m := range []FilterMode{FilterNone, FilterCategory, FilterAuthor} {
		got, err := ParseFilterMode(m.String())
		if err != nil || got != m {
			t.Fatalf("round trip failed for %v: got %v err %v", m, got, err)
		}
	}
	if _, err := ParseFilterMode("bogus"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for unknown mode, got %v", err)
	}
}

func TestQuoteDisplayText_Trims(t *testing.T) {
	q := Quote{Text: "\n  Stay hungry.  \t"}
	if got := q.DisplayText(); got != "Stay hungry." {
		t.Fatalf("unexpected display text: %q", got)
	}
}

func TestFilterTitle(t *testing.T) {
	if got := AllQuotes().Title(); got != AppName {
		t.Fatalf("unfiltered title should be app name, got %q", got)
	}
	if got := ByAuthor(" Marcus Aurelius ").Title(); got != "Marcus Aurelius" {
		t.Fatalf("unexpected title: %q", got)
	}
}
