package codon

// Package codon holds the standard genetic code for DNA and RNA alphabets.
// Everything here is read-only after package initialization and safe to use
// from any goroutine.

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the nucleotide alphabet a sequence is written in.
type Kind string

const (
	DNA Kind = "DNA"
	RNA Kind = "RNA"
)

// Stop is the symbol produced for stop codons.
const Stop = "_"

// ErrLookup is returned when a codon is not present in the table.
var ErrLookup = errors.New("codon not in table")

// ErrUnknownKind is returned for anything other than DNA or RNA.
var ErrUnknownKind = errors.New("unknown sequence kind")

var dnaCodons = map[string]string{
	"GCA": "A", "GCC": "A", "GCG": "A", "GCT": "A",
	"TGC": "C", "TGT": "C",
	"GAC": "D", "GAT": "D",
	"GAA": "E", "GAG": "E",
	"TTC": "F", "TTT": "F",
	"GGA": "G", "GGC": "G", "GGG": "G", "GGT": "G",
	"CAC": "H", "CAT": "H",
	"ATA": "I", "ATC": "I", "ATT": "I",
	"AAA": "K", "AAG": "K",
	"TTA": "L", "TTG": "L", "CTA": "L", "CTC": "L", "CTG": "L", "CTT": "L",
	"ATG": "M",
	"AAC": "N", "AAT": "N",
	"CCA": "P", "CCC": "P", "CCG": "P", "CCT": "P",
	"CAA": "Q", "CAG": "Q",
	"CGA": "R", "CGC": "R", "CGG": "R", "CGT": "R", "AGA": "R", "AGG": "R",
	"TCA": "S", "TCC": "S", "TCG": "S", "TCT": "S", "AGC": "S", "AGT": "S",
	"ACA": "T", "ACC": "T", "ACG": "T", "ACT": "T",
	"GTA": "V", "GTC": "V", "GTG": "V", "GTT": "V",
	"TGG": "W",
	"TAC": "Y", "TAT": "Y",
	"TAA": Stop, "TAG": Stop, "TGA": Stop,
}

// rnaCodons is derived from dnaCodons with every T written as U.
var rnaCodons = func() map[string]string {
	m := make(map[string]string, len(dnaCodons))
	for c, aa := range dnaCodons {
		m[strings.ReplaceAll(c, "T", "U")] = aa
	}
	return m
}()

var alphabets = map[Kind]string{
	DNA: "ATCG",
	RNA: "AUCG",
}

var complements = map[Kind][256]byte{
	DNA: pairs("ATCG", "TAGC"),
	RNA: pairs("AUCG", "UAGC"),
}

func pairs(from, to string) [256]byte {
	var t [256]byte
	for i := 0; i < len(from); i++ {
		t[from[i]] = to[i]
	}
	return t
}

// ParseKind normalizes a user supplied kind name. An empty string means DNA.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "DNA":
		return DNA, nil
	case "RNA":
		return RNA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Alphabet returns the valid symbols for kind.
func Alphabet(kind Kind) (string, error) {
	a, ok := alphabets[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return a, nil
}

// Complement returns the strand complement of b. ok is false when b is not
// part of the kind's alphabet.
func Complement(kind Kind, b byte) (c byte, ok bool) {
	t, found := complements[kind]
	if !found {
		return 0, false
	}
	c = t[b]
	return c, c != 0
}

// Lookup translates a single codon. The codon must be exactly three upper
// case symbols of the kind's alphabet.
func Lookup(kind Kind, c string) (string, error) {
	var table map[string]string
	switch kind {
	case DNA:
		table = dnaCodons
	case RNA:
		table = rnaCodons
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	aa, ok := table[c]
	if !ok {
		return "", fmt.Errorf("%w: %s codon %q", ErrLookup, kind, c)
	}
	return aa, nil
}
