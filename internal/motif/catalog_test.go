package motif

import (
	"errors"
	"testing"

	"mutscan/internal/common"
)

func TestCatalogDuplicateLefts(t *testing.T) {
	c, err := New([]Entry{
		{Left: "AC", Right: "TT", Annotation: "a"},
		{Left: "G+", Right: "CA", Annotation: "b"},
		{Left: "AC", Right: "", Annotation: "c"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Lefts(); len(got) != 2 || got[0] != "AC" || got[1] != "G+" {
		t.Fatalf("Lefts=%v", got)
	}
	if idx := c.Indices("AC"); len(idx) != 2 || idx[0] != 0 || idx[1] != 2 {
		t.Fatalf("Indices(AC)=%v", idx)
	}
	if c.Indices("nope") != nil {
		t.Fatalf("unknown pattern should have no indices")
	}
	if c.Regexp(1).String() != "G+" {
		t.Fatalf("Regexp(1)=%s", c.Regexp(1))
	}
	if r := c.Rights(); len(r) != 3 || r[2] != "" {
		t.Fatalf("Rights=%q", r)
	}
}

func TestCatalogBadPattern(t *testing.T) {
	_, err := New([]Entry{{Left: "AC(", Right: "TT"}})
	if !errors.Is(err, common.ErrPattern) {
		t.Fatalf("want ErrPattern, got %v", err)
	}
	if !common.Fatal(err) {
		t.Fatalf("pattern errors must be fatal")
	}
}
