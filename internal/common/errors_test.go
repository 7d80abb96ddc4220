package common

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("%w: open x.fq.gz: %w", ErrIO, os.ErrNotExist)
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("wrapped error lost its kinds: %v", err)
	}
	if Fatal(err) {
		t.Fatalf("io errors fail one pair only")
	}
	if !Fatal(fmt.Errorf("x: %w", ErrConfig)) || !Fatal(fmt.Errorf("x: %w", ErrPattern)) {
		t.Fatalf("config and pattern errors must be fatal")
	}
	if Fatal(ErrFormat) {
		t.Fatalf("format errors fail one pair only")
	}
}

func TestCutPrefixToken(t *testing.T) {
	if got := CutPrefixToken("S1-L001_R1.fastq.gz", "-"); got != "S1" {
		t.Fatalf("got %q", got)
	}
	if got := CutPrefixToken("plain.fq", "-"); got != "plain.fq" {
		t.Fatalf("got %q", got)
	}
}
