package main

import (
	"sync"
	"time"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/bioseq"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/fasta"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/report"
	"github.com/charmbracelet/log"
)

// analyzer runs one goroutine per record. Sequences share nothing, so the
// only synchronization is around the output writer.
type analyzer struct {
	kind   bioseq.Kind
	opts   report.Options
	delay  time.Duration
	out    report.TextWriter
	logger *log.Logger

	outMu sync.Mutex
}

// analyzeAll returns the reports of the valid records in input order and the
// number of records that were skipped.
func (a *analyzer) analyzeAll(records []fasta.FastaRecord) ([]report.Report, int) {
	results := make([]*report.Report, len(records))
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec fasta.FastaRecord) {
			defer wg.Done()
			results[i] = a.analyze(rec)
		}(i, rec)
	}
	wg.Wait()

	reports := make([]report.Report, 0, len(records))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, len(records) - len(reports)
}

func (a *analyzer) analyze(rec fasta.FastaRecord) *report.Report {
	s, err := bioseq.New(rec.Sequence, a.kind, rec.Header)
	if err != nil {
		a.logger.Error("skipping record", "header", rec.Header, "kind", report.ErrorKind(err), "err", err)
		return nil
	}
	r := report.Build(s, a.opts)
	for _, n := range r.Notes {
		a.logger.Debug("view unavailable", "header", rec.Header, "field", n.Field, "kind", n.Kind)
	}
	if a.delay > 0 {
		time.Sleep(a.delay)
	}

	a.outMu.Lock()
	defer a.outMu.Unlock()
	if err := a.out.Write(r); err != nil {
		a.logger.Error("failed to write report", "header", rec.Header, "err", err)
	}
	return &r
}
