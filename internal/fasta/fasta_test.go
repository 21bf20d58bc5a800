package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFastaSimple(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != ">seq1" || recs[0].Sequence != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != ">seq2 desc" || recs[1].Sequence != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseFastaMultiLineAndWhitespace(t *testing.T) {
	input := ">seq1  \r\n  ATG\r\nTTT \n\nTAA\n"
	recs, _ := ParseFasta(strings.NewReader(input))
	if len(recs) != 1 || recs[0].Header != ">seq1" || recs[0].Sequence != "ATGTTTTAA" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParseFastaDuplicateHeader(t *testing.T) {
	input := ">a\nAAAA\n>b\nCCCC\n>a\nGGGG\n"
	recs, _ := ParseFasta(strings.NewReader(input))
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != ">a" || recs[0].Sequence != "GGGG" {
		t.Fatalf("expected later duplicate to overwrite in place, got %+v", recs[0])
	}
	if recs[1].Sequence != "CCCC" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseFastaBeforeHeader(t *testing.T) {
	input := "ACGT\n>x\nTT\n"
	recs, _ := ParseFasta(strings.NewReader(input))
	if len(recs) != 2 || recs[0].Header != "" || recs[0].Sequence != "ACGT" {
		t.Fatalf("expected orphan lines under empty header, got %+v", recs)
	}
}

func TestReadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.fasta")
	if err := os.WriteFile(p, []byte(">r1\nATCG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := ReadFile(p)
	if err != nil || len(recs) != 1 {
		t.Fatalf("unexpected result: %+v (%v)", recs, err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.fasta")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
