package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForPair(t *testing.T) {
	cases := []struct {
		fileA, dir, raw string
	}{
		{"data/sample7-L001_R1.fastq.gz", "out/sample7_output", "out/sample7_output/sample7_output_raw.csv"},
		{"plain_R1.fastq.gz", "out/plain_R1.fastq.gz_output", "out/plain_R1.fastq.gz_output/plain_R1_raw.csv"},
		{"/abs/x-y-z.fq.gz", "out/x_output", "out/x_output/x_output_raw.csv"},
	}
	for _, c := range cases {
		l := ForPair("out", c.fileA)
		if l.Dir != filepath.FromSlash(c.dir) {
			t.Errorf("%s: dir=%s want %s", c.fileA, l.Dir, c.dir)
		}
		if got := l.RawPath("csv"); got != filepath.FromSlash(c.raw) {
			t.Errorf("%s: raw=%s want %s", c.fileA, got, c.raw)
		}
	}
	if got := ForPair("", "s-1.fq.gz").CountPath("tsv"); got != filepath.Join("s_output", "s_output_count.tsv") {
		t.Errorf("count path %s", got)
	}
}

func TestEnsureCreatesDir(t *testing.T) {
	l := ForPair(t.TempDir(), "abc-R1.fastq.gz")
	if err := l.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if fi, err := os.Stat(l.Dir); err != nil || !fi.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
	if err := l.Ensure(); err != nil {
		t.Fatalf("Ensure twice: %v", err)
	}
}
