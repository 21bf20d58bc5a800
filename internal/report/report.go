package report

// Package report turns an analysed sequence into a structured per record
// report. Failures of individual views are kept as notes so a caller can tell
// "no transcript because the record is RNA" apart from an empty result.

import (
	"errors"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/bioseq"
)

// Options selects the parameters of the derived views.
type Options struct {
	WindowSize   int
	CodonUsageAA string
	ORFStart     int
	ORFEnd       int
	Ordered      bool
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{WindowSize: bioseq.DefaultWindowSize, CodonUsageAA: "L"}
}

// Note records why a view is missing from a report.
type Note struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report holds every view computed for one record.
type Report struct {
	bioseq.Summary
	Frequency         map[string]int     `json:"nucleotide_frequency"`
	Transcript        string             `json:"transcript,omitempty"`
	ReverseComplement string             `json:"reverse_complement"`
	GCContent         *int               `json:"gc_content,omitempty"`
	WindowSize        int                `json:"window_size"`
	GCWindows         []int              `json:"gc_windows"`
	Translation       []string           `json:"translation"`
	CodonUsageAA      string             `json:"codon_usage_aa"`
	CodonUsage        map[string]float64 `json:"codon_usage"`
	Frames            [][]string         `json:"reading_frames"`
	Proteins          []string           `json:"proteins"`
	Notes             []Note             `json:"notes,omitempty"`
}

// Error kinds used in notes.
const (
	KindWrongKind       = "wrong_kind"
	KindEmptyInput      = "empty_input"
	KindLookupFailure   = "lookup_failure"
	KindInvalidArgument = "invalid_argument"
	KindInvalidSequence = "invalid_sequence"
	KindOther           = "error"
)

// ErrorKind names the class of err for display and JSON output.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, bioseq.ErrWrongKind):
		return KindWrongKind
	case errors.Is(err, bioseq.ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, bioseq.ErrLookup):
		return KindLookupFailure
	case errors.Is(err, bioseq.ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, bioseq.ErrInvalidSequence):
		return KindInvalidSequence
	}
	return KindOther
}

// HasNote reports whether the view named field failed.
func (r Report) HasNote(field string) bool {
	for _, n := range r.Notes {
		if n.Field == field {
			return true
		}
	}
	return false
}

// Build computes all views of s.
func Build(s *bioseq.Sequence, opts Options) Report {
	r := Report{
		Summary:           s.Summary(),
		Frequency:         s.NucleotideFrequency(),
		ReverseComplement: s.ReverseComplement(),
		WindowSize:        opts.WindowSize,
		CodonUsageAA:      opts.CodonUsageAA,
	}
	note := func(field string, err error) {
		r.Notes = append(r.Notes, Note{Field: field, Kind: ErrorKind(err), Message: err.Error()})
	}

	if t, err := s.Transcribe(); err != nil {
		note("transcript", err)
	} else {
		r.Transcript = t
	}
	if gc, err := s.GCContent(); err != nil {
		note("gc_content", err)
	} else {
		r.GCContent = &gc
	}
	if w, err := s.GCContentWindowed(opts.WindowSize); err != nil {
		note("gc_windows", err)
	} else {
		r.GCWindows = w
	}
	if tr, err := s.Translate(0); err != nil {
		note("translation", err)
	} else {
		r.Translation = tr
	}
	if cu, err := s.CodonUsage(opts.CodonUsageAA); err != nil {
		note("codon_usage", err)
	} else {
		r.CodonUsage = cu
	}
	if fr, err := s.GenerateReadingFrames(); err != nil {
		note("reading_frames", err)
	} else {
		r.Frames = fr
	}
	if p, err := s.AllProteinsFromORFs(opts.ORFStart, opts.ORFEnd, opts.Ordered); err != nil {
		note("proteins", err)
	} else {
		r.Proteins = p
	}
	return r
}
