// Command seqan analyses the nucleotide records of a FASTA file: composition,
// transcription, reverse complement, GC content, translation, codon usage,
// reading frames and open reading frame proteins.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/codon"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/config"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/fasta"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// flag name -> config key
var flagKeys = map[string]string{
	"out":       "output_json",
	"log-file":  "log_file",
	"log-level": "log_level",
	"kind":      "kind",
	"window":    "window_size",
	"aa":        "codon_usage_aa",
	"orf-start": "orf_start",
	"orf-end":   "orf_end",
	"ordered":   "ordered_proteins",
	"delay":     "delay_ms",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "seqan [file.fasta]",
		Short: "Analyse the DNA/RNA records of a FASTA file",
		Long: `Reads every record of a FASTA file and reports nucleotide frequency,
transcript, reverse complement, GC content, translation, codon usage,
the six reading frames and the proteins found in them.

Records are analysed concurrently; a record that is not a valid sequence
of the selected kind is logged and skipped.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}
	cmd.SetOut(os.Stdout)

	f := cmd.Flags()
	f.StringP("config", "c", "", "path to config.json (optional)")
	f.StringP("out", "o", "", "also write the reports as JSON to this path")
	f.String("log-file", "", "append logs to this file as well as stderr")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.StringP("kind", "k", "DNA", "sequence kind of every record: DNA or RNA")
	f.IntP("window", "w", 20, "window size for the windowed GC content")
	f.String("aa", "L", "amino acid whose codon usage is reported")
	f.Int("orf-start", 0, "start of the region searched for proteins")
	f.Int("orf-end", 0, "end (exclusive) of the region searched for proteins; 0 means whole sequence")
	f.Bool("ordered", false, "sort proteins by descending length")
	f.Bool("no-color", false, "disable colored nucleotides")
	f.Int("delay", 0, "artificial per record delay in milliseconds")
	f.BoolP("verbose", "v", false, "enable verbose (debug) logging")

	for name, key := range flagKeys {
		_ = v.BindPFlag(key, f.Lookup(name))
	}
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		v.Set("color", false)
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(v, cfgPath)
	if err != nil {
		// without an argument or --config the default file can only have
		// supplied the input; a broken one means there is no input to run
		if len(args) == 0 && cfgPath == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "no input file given (%v)\n", err)
			return cmd.Usage()
		}
		return err
	}
	if len(args) == 1 {
		cfg.InputFasta = args[0]
	}
	if cfg.InputFasta == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no input file given")
		return cmd.Usage()
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, closeLog := newLogger(cmd.ErrOrStderr(), cfg.LogFile, cfg.LogLevel, verbose)
	defer closeLog()

	logger.Debug("loaded config", "input_fasta", cfg.InputFasta, "output_json", cfg.OutputJSON, "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "kind", cfg.Kind, "window_size", cfg.WindowSize, "codon_usage_aa", cfg.CodonUsageAA)

	kind, err := codon.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}

	records, err := fasta.ReadFile(cfg.InputFasta)
	if err != nil {
		return fmt.Errorf("failed to read input fasta: %w", err)
	}
	logger.Info("parsed fasta", "path", cfg.InputFasta, "records", len(records))
	for _, r := range records {
		logger.Debug("record", "header", r.Header, "length", len(r.Sequence))
	}

	a := &analyzer{
		kind: kind,
		opts: report.Options{
			WindowSize:   cfg.WindowSize,
			CodonUsageAA: cfg.CodonUsageAA,
			ORFStart:     cfg.ORFStart,
			ORFEnd:       cfg.ORFEnd,
			Ordered:      cfg.OrderedProteins,
		},
		delay:  time.Duration(cfg.DelayMS) * time.Millisecond,
		out:    report.TextWriter{W: cmd.OutOrStdout(), Color: cfg.Color},
		logger: logger,
	}
	start := time.Now()
	reports, failed := a.analyzeAll(records)
	logger.Info("analysis finished", "records", len(records), "reported", len(reports), "skipped", failed, "duration_ms", time.Since(start).Milliseconds())

	if cfg.OutputJSON != "" {
		if err := report.SaveJSON(cfg.OutputJSON, reports); err != nil {
			logger.Error("failed to write output JSON", "path", cfg.OutputJSON, "err", err)
			return err
		}
		logger.Info("wrote output JSON", "path", cfg.OutputJSON, "reports", len(reports))
	}
	return nil
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
