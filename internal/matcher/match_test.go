package matcher

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

func TestFirstRecordsFollowingBase(t *testing.T) {
	m, ok := First(regexp.MustCompile("AC"), "ACGTT")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Pattern != "AC" || m.Matched != "AC" || m.Next != 'G' || m.Sequence != "ACGTT" {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestFirstKeepsOnlyOneMatch(t *testing.T) {
	re := regexp.MustCompile("ACG")
	got, err := Scan(context.Background(), re, []string{"ACGTACGTACGT"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Next != 'T' {
		t.Fatalf("want one match followed by T, got %+v", got)
	}
}

func TestFirstExcludesMatchAtReadEnd(t *testing.T) {
	if _, ok := First(regexp.MustCompile("GTT"), "ACGTT"); ok {
		t.Fatal("match ending at the last base must be dropped")
	}
	// The leftmost match is the one that counts.
	m, ok := First(regexp.MustCompile("T+"), "ACTTGT")
	if !ok || m.Matched != "TT" || m.Next != 'G' {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
}

func TestFirstRegexSemantics(t *testing.T) {
	m, ok := First(regexp.MustCompile("G[AT]C"), "CCGTCA")
	if !ok || m.Matched != "GTC" || m.Next != 'A' {
		t.Fatalf("got %+v ok=%v", m, ok)
	}
	// Anchors apply to the whole read.
	if _, ok := First(regexp.MustCompile("^CA"), "ACAT"); ok {
		t.Fatal("anchored pattern must not match mid-read")
	}
}

func TestScanPreservesReadOrder(t *testing.T) {
	re := regexp.MustCompile("AC")
	reads := []string{"ACGTT", "TTTTT", "GACAA", "AC"}
	got, err := Scan(context.Background(), re, reads)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Sequence != "ACGTT" || got[1].Sequence != "GACAA" {
		t.Fatalf("got %+v", got)
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, regexp.MustCompile("A"), []string{"AAA"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
