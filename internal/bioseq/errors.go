package bioseq

import (
	"errors"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/codon"
)

var (
	// ErrInvalidSequence means the text contains symbols outside the alphabet
	// of the requested kind. No Sequence is produced.
	ErrInvalidSequence = errors.New("invalid sequence")

	// ErrWrongKind means the operation is not defined for the sequence kind.
	ErrWrongKind = errors.New("wrong sequence kind")

	// ErrEmptyInput means a ratio was requested over zero symbols.
	ErrEmptyInput = errors.New("empty sequence")

	// ErrInvalidArgument covers window sizes and offsets that make no sense.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookup is codon.ErrLookup, re-exported for callers of this package.
	ErrLookup = codon.ErrLookup
)
