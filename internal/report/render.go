package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/bioseq"
	"github.com/charmbracelet/lipgloss"
)

// Base colors
var (
	adenineColor  = lipgloss.Color("#10B981") // Green
	cytosineColor = lipgloss.Color("#3B82F6") // Blue
	guanineColor  = lipgloss.Color("#F59E0B") // Amber
	thymineColor  = lipgloss.Color("#EF4444") // Red, also used for U
	mutedColor    = lipgloss.Color("#9CA3AF")
)

// Styles
var (
	baseStyles = map[byte]lipgloss.Style{
		'A': lipgloss.NewStyle().Foreground(adenineColor),
		'C': lipgloss.NewStyle().Foreground(cytosineColor),
		'G': lipgloss.NewStyle().Foreground(guanineColor),
		'T': lipgloss.NewStyle().Foreground(thymineColor),
		'U': lipgloss.NewStyle().Foreground(thymineColor),
	}

	fieldStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)

// Colorize renders seq with one color per base. Runs of the same base share
// one escape sequence. Symbols without a color are written as is.
func Colorize(seq string) string {
	var b strings.Builder
	for i := 0; i < len(seq); {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		if st, ok := baseStyles[seq[i]]; ok {
			b.WriteString(st.Render(seq[i:j]))
		} else {
			b.WriteString(seq[i:j])
		}
		i = j
	}
	return b.String()
}

// TextWriter prints reports in a human readable layout.
type TextWriter struct {
	W     io.Writer
	Color bool
}

func (tw TextWriter) seq(s string) string {
	if tw.Color {
		return Colorize(s)
	}
	return s
}

func (tw TextWriter) field(name string) string {
	if tw.Color {
		return fieldStyle.Render(name + ":")
	}
	return name + ":"
}

// Write prints one report. The whole report is formatted before the single
// write so concurrent callers only need to serialize Write itself.
func (tw TextWriter) Write(r Report) error {
	var b strings.Builder
	line := func(name, value string) {
		fmt.Fprintf(&b, "%s %s\n", tw.field(name), value)
	}

	line("ID", r.Label)
	line("Sequence", tw.seq(r.Sequence))
	line("Kind", string(r.Kind))
	line("Length", fmt.Sprint(r.Length))
	line("Nucleotide frequency", formatCounts(r.Frequency))
	if !r.HasNote("transcript") {
		line("Transcript", tw.seq(r.Transcript))
	}
	line("Reverse complement", tw.seq(r.ReverseComplement))
	if r.GCContent != nil {
		line("GC content", fmt.Sprintf("%d%%", *r.GCContent))
	}
	line(fmt.Sprintf("GC content (window %d)", r.WindowSize), fmt.Sprint(r.GCWindows))
	line("Translation", strings.Join(r.Translation, " "))
	line(fmt.Sprintf("Codon usage (%s)", r.CodonUsageAA), FormatUsage(r.CodonUsage))
	for i, f := range r.Frames {
		line("Frame "+bioseq.FrameNames[i], strings.Join(f, " "))
	}
	line("Proteins", strings.Join(r.Proteins, ", "))
	for _, n := range r.Notes {
		msg := fmt.Sprintf("%s unavailable (%s): %s", n.Field, n.Kind, n.Message)
		if tw.Color {
			msg = noteStyle.Render(msg)
		}
		b.WriteString(msg + "\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(tw.W, b.String())
	return err
}

func formatCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, m[k])
	}
	return strings.Join(parts, " ")
}

// FormatUsage lists codon usage as codon:share pairs in codon order.
func FormatUsage(m map[string]float64) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%.2f", k, m[k])
	}
	return strings.Join(parts, " ")
}

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal failed: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// SaveJSON writes reports to path.
func SaveJSON(path string, reports []Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, reports); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadJSON reads a file written by SaveJSON.
func LoadJSON(path string) ([]Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reports, nil
}
