package fasta

// Package fasta contains a minimal FASTA reader. It keeps parsing simple:
// a header line starts a record and every other line is appended to the
// current record's sequence.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderPrefix marks a header line.
const HeaderPrefix = ">"

const maxLineSize = 16 * 1024 * 1024

// FastaRecord represents a single FASTA record. Header is the full header
// line, marker included.
type FastaRecord struct {
	Header   string
	Sequence string
}

// ParseFasta reads FASTA records from r in file order. Lines are trimmed of
// surrounding whitespace before use. Lines seen before the first header are
// collected under an empty header. A repeated header replaces the sequence
// of the earlier record but keeps its position.
func ParseFasta(r io.Reader) ([]FastaRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []FastaRecord
	index := make(map[string]int)
	cur := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, HeaderPrefix) {
			if i, ok := index[line]; ok {
				records[i].Sequence = ""
				cur = i
				continue
			}
			records = append(records, FastaRecord{Header: line})
			cur = len(records) - 1
			index[line] = cur
			continue
		}
		if cur < 0 {
			if line == "" {
				continue
			}
			records = append(records, FastaRecord{})
			cur = len(records) - 1
			index[""] = cur
		}
		records[cur].Sequence += line
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	return records, nil
}

// ReadFile opens path and parses it with ParseFasta.
func ReadFile(path string) ([]FastaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ParseFasta(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
