package bioseq

// Package bioseq implements the analysis of a single nucleotide sequence:
// composition, transcription, reverse complement, translation, reading
// frames and open reading frame protein extraction. A Sequence never changes
// after New returns, so one value can be shared by any number of goroutines.

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/codon"
)

// Kind is the alphabet of a sequence.
type Kind = codon.Kind

const (
	DNA = codon.DNA
	RNA = codon.RNA
)

// DefaultWindowSize is the window length used by GCContentWindowed when the
// caller has no preference.
const DefaultWindowSize = 20

// StartSymbol opens a candidate protein.
const StartSymbol = "M"

// FrameNames labels the frames returned by GenerateReadingFrames, in order.
var FrameNames = [6]string{"+1", "+2", "+3", "-1", "-2", "-3"}

// Sequence is a validated, upper case nucleotide sequence.
type Sequence struct {
	seq   string
	kind  Kind
	label string
	valid bool
}

// Summary is the descriptive part of a Sequence, left to callers to format.
type Summary struct {
	Label    string `json:"label"`
	Sequence string `json:"sequence"`
	Kind     Kind   `json:"kind"`
	Length   int    `json:"length"`
}

// New validates text against the alphabet of kind and returns a Sequence.
// The text is upper cased first; an empty kind means DNA.
func New(text string, kind Kind, label string) (*Sequence, error) {
	if kind == "" {
		kind = DNA
	}
	alphabet, err := codon.Alphabet(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSequence, err)
	}
	seq := strings.ToUpper(text)
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(alphabet, seq[i]) < 0 {
			return nil, fmt.Errorf("%w: not a %s sequence (symbol %q at position %d)", ErrInvalidSequence, kind, seq[i], i)
		}
	}
	return &Sequence{seq: seq, kind: kind, label: label, valid: true}, nil
}

func (s *Sequence) Kind() Kind     { return s.kind }
func (s *Sequence) Label() string  { return s.label }
func (s *Sequence) String() string { return s.seq }
func (s *Sequence) Len() int       { return len(s.seq) }

// Valid reports whether the sequence passed validation. It is always true for
// values returned by New.
func (s *Sequence) Valid() bool { return s.valid }

// Summary returns label, sequence, kind and length.
func (s *Sequence) Summary() Summary {
	return Summary{Label: s.label, Sequence: s.seq, Kind: s.kind, Length: len(s.seq)}
}

// NucleotideFrequency counts every distinct symbol in the sequence.
func (s *Sequence) NucleotideFrequency() map[string]int {
	freq := make(map[string]int)
	for i := 0; i < len(s.seq); i++ {
		freq[s.seq[i:i+1]]++
	}
	return freq
}

// Transcribe replaces thymine with uracil. Only DNA can be transcribed.
func (s *Sequence) Transcribe() (string, error) {
	if s.kind != DNA {
		return "", fmt.Errorf("%w: transcription needs DNA, have %s", ErrWrongKind, s.kind)
	}
	return strings.ReplaceAll(s.seq, "T", "U"), nil
}

// ReverseComplement complements each base for the sequence kind and reverses
// the result.
func (s *Sequence) ReverseComplement() string {
	n := len(s.seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		// every symbol was validated in New, so the lookup cannot miss
		c, _ := codon.Complement(s.kind, s.seq[n-1-i])
		out[i] = c
	}
	return string(out)
}

// GCContent is the percentage of C and G symbols, rounded half to even.
func (s *Sequence) GCContent() (int, error) {
	if len(s.seq) == 0 {
		return 0, fmt.Errorf("%w: gc content of %q", ErrEmptyInput, s.label)
	}
	return gcPercent(s.seq), nil
}

// GCContentWindowed computes GCContent over consecutive windows of
// windowSize symbols. A trailing window shorter than windowSize is dropped.
func (s *Sequence) GCContentWindowed(windowSize int) ([]int, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidArgument, windowSize)
	}
	res := make([]int, 0, len(s.seq)/windowSize)
	for i := 0; i+windowSize <= len(s.seq); i += windowSize {
		res = append(res, gcPercent(s.seq[i:i+windowSize]))
	}
	return res, nil
}

func gcPercent(seq string) int {
	gc := strings.Count(seq, "C") + strings.Count(seq, "G")
	return int(math.RoundToEven(float64(gc) / float64(len(seq)) * 100))
}

// Translate reads codons from startOffset until fewer than three symbols are
// left and maps each one through the codon table.
func (s *Sequence) Translate(startOffset int) ([]string, error) {
	if startOffset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, startOffset)
	}
	var n int
	if len(s.seq) > startOffset {
		n = (len(s.seq) - startOffset) / 3
	}
	aa := make([]string, 0, n)
	for pos := startOffset; pos+3 <= len(s.seq); pos += 3 {
		a, err := codon.Lookup(s.kind, s.seq[pos:pos+3])
		if err != nil {
			return nil, fmt.Errorf("translate %q at %d: %w", s.label, pos, err)
		}
		aa = append(aa, a)
	}
	return aa, nil
}

// CodonUsage returns, for every codon in frame +1 that encodes aminoAcid,
// its share of all such codons rounded half to even at two decimals.
func (s *Sequence) CodonUsage(aminoAcid string) (map[string]float64, error) {
	counts := make(map[string]int)
	total := 0
	for pos := 0; pos+3 <= len(s.seq); pos += 3 {
		c := s.seq[pos : pos+3]
		a, err := codon.Lookup(s.kind, c)
		if err != nil {
			return nil, fmt.Errorf("codon usage %q at %d: %w", s.label, pos, err)
		}
		if a == aminoAcid {
			counts[c]++
			total++
		}
	}
	usage := make(map[string]float64, len(counts))
	for c, n := range counts {
		usage[c] = math.RoundToEven(float64(n)/float64(total)*100) / 100
	}
	return usage, nil
}

// GenerateReadingFrames translates the three forward frames followed by the
// three frames of the reverse complement.
func (s *Sequence) GenerateReadingFrames() ([][]string, error) {
	rc, err := New(s.ReverseComplement(), s.kind, s.label)
	if err != nil {
		return nil, err
	}
	frames := make([][]string, 0, len(FrameNames))
	for _, strand := range []*Sequence{s, rc} {
		for off := 0; off < 3; off++ {
			f, err := strand.Translate(off)
			if err != nil {
				return nil, err
			}
			frames = append(frames, f)
		}
	}
	return frames, nil
}

// ExtractProteins scans a translated frame for proteins. Every start symbol
// opens a new candidate and every non-stop symbol, the start included, is
// appended to all open candidates. A stop emits the open candidates in the
// order they were opened. Candidates still open at the end of the frame are
// discarded.
func ExtractProteins(frame []string) []string {
	var open []*strings.Builder
	var proteins []string
	for _, aa := range frame {
		if aa == codon.Stop {
			for _, b := range open {
				proteins = append(proteins, b.String())
			}
			open = open[:0]
			continue
		}
		if aa == StartSymbol {
			open = append(open, &strings.Builder{})
		}
		for _, b := range open {
			b.WriteString(aa)
		}
	}
	return proteins
}

// ExtractProteins is the package level ExtractProteins, kept on the type so a
// Sequence exposes the whole pipeline.
func (s *Sequence) ExtractProteins(frame []string) []string {
	return ExtractProteins(frame)
}

// AllProteinsFromORFs collects the proteins of all six reading frames in
// frame order. When endPos > startPos only [startPos, endPos) is analysed,
// with endPos clamped to the sequence length. ordered sorts the result by
// descending length, keeping equal lengths in frame order.
func (s *Sequence) AllProteinsFromORFs(startPos, endPos int, ordered bool) ([]string, error) {
	if startPos < 0 || endPos < 0 {
		return nil, fmt.Errorf("%w: range [%d, %d)", ErrInvalidArgument, startPos, endPos)
	}
	src := s
	if endPos > startPos {
		endPos = min(endPos, len(s.seq))
		startPos = min(startPos, endPos)
		sub, err := New(s.seq[startPos:endPos], s.kind, s.label)
		if err != nil {
			return nil, err
		}
		src = sub
	}
	frames, err := src.GenerateReadingFrames()
	if err != nil {
		return nil, err
	}
	var res []string
	for _, f := range frames {
		res = append(res, ExtractProteins(f)...)
	}
	if ordered {
		slices.SortStableFunc(res, func(a, b string) int { return len(b) - len(a) })
	}
	return res, nil
}
