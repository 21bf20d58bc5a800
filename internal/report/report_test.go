package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/bioseq"
)

func build(t *testing.T, text string, kind bioseq.Kind) Report {
	t.Helper()
	s, err := bioseq.New(text, kind, ">test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return Build(s, DefaultOptions())
}

func TestBuildDNA(t *testing.T) {
	r := build(t, "ATGTTTTAA", bioseq.DNA)
	if r.Label != ">test" || r.Length != 9 || r.Kind != bioseq.DNA {
		t.Fatalf("unexpected summary: %+v", r.Summary)
	}
	if r.Transcript != "AUGUUUUAA" || r.ReverseComplement != "TTAAAACAT" {
		t.Fatalf("unexpected transcript/revcomp: %q %q", r.Transcript, r.ReverseComplement)
	}
	if r.GCContent == nil || *r.GCContent != 11 {
		t.Fatalf("expected gc content 11, got %v", r.GCContent)
	}
	if len(r.Frames) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(r.Frames))
	}
	if !reflect.DeepEqual(r.Proteins, []string{"MF"}) {
		t.Fatalf("expected [MF], got %v", r.Proteins)
	}
	if len(r.Notes) != 0 {
		t.Fatalf("expected no notes, got %+v", r.Notes)
	}
}

func TestBuildRecordsNotes(t *testing.T) {
	r := build(t, "AUGUUUUAA", bioseq.RNA)
	if r.Transcript != "" {
		t.Fatalf("expected no transcript for RNA, got %q", r.Transcript)
	}
	if len(r.Notes) != 1 || r.Notes[0].Field != "transcript" || r.Notes[0].Kind != KindWrongKind {
		t.Fatalf("expected wrong_kind note for transcript, got %+v", r.Notes)
	}

	r = build(t, "", bioseq.DNA)
	found := false
	for _, n := range r.Notes {
		if n.Field == "gc_content" && n.Kind == KindEmptyInput {
			found = true
		}
	}
	if !found || r.GCContent != nil {
		t.Fatalf("expected empty_input note for gc_content, got %+v", r.Notes)
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := TextWriter{W: &buf}
	if err := tw.Write(build(t, "ATGCTGCTTTTATAA", bioseq.DNA)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"ID: >test\n",
		"Sequence: ATGCTGCTTTTATAA\n",
		"Nucleotide frequency: A:4 C:2 G:2 T:7\n",
		"Codon usage (L): CTG:0.33 CTT:0.33 TTA:0.33\n",
		"Frame +1: M L L L _\n",
		"Frame -3: I K A A\n",
		"Proteins: MLLL\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTextWriterTranscriptLine(t *testing.T) {
	var buf bytes.Buffer
	tw := TextWriter{W: &buf}

	// an empty DNA record has a valid, empty transcript
	_ = tw.Write(build(t, "", bioseq.DNA))
	if out := buf.String(); !strings.Contains(out, "Transcript: \n") || strings.Contains(out, "transcript unavailable") {
		t.Fatalf("expected empty transcript line for empty DNA, got:\n%s", out)
	}

	buf.Reset()
	_ = tw.Write(build(t, "AUG", bioseq.RNA))
	out := buf.String()
	if strings.Contains(out, "Transcript:") {
		t.Fatalf("expected no transcript line for RNA, got:\n%s", out)
	}
	if !strings.Contains(out, "transcript unavailable (wrong_kind)") {
		t.Fatalf("expected wrong_kind note for RNA, got:\n%s", out)
	}
}

func TestFormatUsageOrdered(t *testing.T) {
	m := map[string]float64{"TTA": 0.25, "CTG": 0.12, "CTT": 0.62}
	for i := 0; i < 10; i++ {
		if got := FormatUsage(m); got != "CTG:0.12 CTT:0.62 TTA:0.25" {
			t.Fatalf("expected codons in order, got %q", got)
		}
	}
	if got := FormatUsage(nil); got != "-" {
		t.Fatalf("expected placeholder for empty usage, got %q", got)
	}
}

func TestColorizePlainWithoutTerminal(t *testing.T) {
	// styles degrade to plain text when no color profile is detected
	if got := Colorize("AACGTU"); !strings.Contains(stripANSI(got), "AACGTU") {
		t.Fatalf("expected bases to survive colorizing, got %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && r == 'm':
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestJSONRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reports.json")
	in := []Report{build(t, "ATGTTTTAA", bioseq.DNA), build(t, "AUGUUUUAA", bioseq.RNA)}
	if err := SaveJSON(p, in); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}
	out, err := LoadJSON(p)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if len(out) != 2 || out[0].Sequence != "ATGTTTTAA" || out[1].Notes[0].Kind != KindWrongKind {
		t.Fatalf("unexpected reports: %+v", out)
	}
}
