package codon

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		kind  Kind
		codon string
		want  string
	}{
		{DNA, "ATG", "M"},
		{DNA, "TTT", "F"},
		{DNA, "TAA", Stop},
		{DNA, "TGA", Stop},
		{RNA, "AUG", "M"},
		{RNA, "UUA", "L"},
		{RNA, "UAG", Stop},
	}
	for _, c := range cases {
		got, err := Lookup(c.kind, c.codon)
		if err != nil {
			t.Fatalf("Lookup(%s, %s): unexpected error: %v", c.kind, c.codon, err)
		}
		if got != c.want {
			t.Errorf("Lookup(%s, %s): expected %q, got %q", c.kind, c.codon, c.want, got)
		}
	}
}

func TestLookupFailures(t *testing.T) {
	for _, c := range []struct {
		kind  Kind
		codon string
	}{
		{DNA, "ANG"},
		{DNA, "AUG"},
		{RNA, "ATG"},
		{DNA, "AT"},
		{DNA, "atg"},
	} {
		if _, err := Lookup(c.kind, c.codon); !errors.Is(err, ErrLookup) {
			t.Errorf("Lookup(%s, %q): expected ErrLookup, got %v", c.kind, c.codon, err)
		}
	}
	if _, err := Lookup("XNA", "ATG"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestTablesCoverAllCodons(t *testing.T) {
	if len(dnaCodons) != 64 || len(rnaCodons) != 64 {
		t.Fatalf("expected 64 codons per table, got dna=%d rna=%d", len(dnaCodons), len(rnaCodons))
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": DNA, "dna": DNA, " RNA ": RNA, "rna": RNA} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseKind("protein"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestComplement(t *testing.T) {
	if c, ok := Complement(DNA, 'A'); !ok || c != 'T' {
		t.Errorf("expected DNA A->T, got %q %v", c, ok)
	}
	if c, ok := Complement(RNA, 'A'); !ok || c != 'U' {
		t.Errorf("expected RNA A->U, got %q %v", c, ok)
	}
	if _, ok := Complement(RNA, 'T'); ok {
		t.Errorf("expected T to have no RNA complement")
	}
}
