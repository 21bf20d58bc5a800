// Command tui browses the JSON reports written by `seqan --out`.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/bioseq"
	"github.com/Tryton22/Proyecto-2-SISTOPER/internal/report"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	violet = lipgloss.Color("#7C3AED")
	green  = lipgloss.Color("#10B981")
	amber  = lipgloss.Color("#F59E0B")
	slate  = lipgloss.Color("#1F2937")
	paper  = lipgloss.Color("#F3F4F6")
	gray   = lipgloss.Color("#9CA3AF")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gray).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(violet)
	barStyle     = lipgloss.NewStyle().Background(slate).Foreground(paper)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(gray).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(amber)
	dnaStyle     = lipgloss.NewStyle().Bold(true).Foreground(green)
	rnaStyle     = lipgloss.NewStyle().Bold(true).Foreground(amber)
	labelStyle   = lipgloss.NewStyle().Foreground(gray)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(violet).Width(14)
)

type listItem struct {
	record report.Report
}

func (i listItem) FilterValue() string { return i.record.Label }

func (i listItem) Title() string {
	if i.record.Label != "" {
		return strings.TrimPrefix(i.record.Label, ">")
	}
	return "(no header)"
}

// Description is the metadata line shown below the title in the selector list.
func (i listItem) Description() string {
	gc := "-"
	if i.record.GCContent != nil {
		gc = fmt.Sprintf("%d%%", *i.record.GCContent)
	}
	return fmt.Sprintf("%s    Len: %d    GC: %s    Proteins: %d",
		kindStyle(i.record.Kind).Render(string(i.record.Kind)), i.record.Length, gc, len(i.record.Proteins))
}

func kindStyle(k bioseq.Kind) lipgloss.Style {
	if k == bioseq.RNA {
		return rnaStyle
	}
	return dnaStyle
}

type mode int

const (
	modeSequence mode = iota
	modeFrames
	modeProteins
)

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "Sequence"
	case modeFrames:
		return "Reading frames"
	case modeProteins:
		return "Proteins"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []report.Report
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	selectedIndex int
}

func initialModel(records []report.Report) model {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = listItem{record: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Records"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		records:     records,
		currentMode: modeSequence,
	}
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		// let the list own the keyboard while filtering
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			return m.cycleMode(), nil
		case "1":
			m.currentMode = modeSequence
			return m, nil
		case "2":
			m.currentMode = modeFrames
			return m, nil
		case "3":
			m.currentMode = modeProteins
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderLeftPanel(), m.renderRightPanel())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m model) renderLeftPanel() string {
	return panelStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	panel := panelStyle.Width(m.width*2/3 - 2).Height(m.height - 4)

	selected, ok := m.list.SelectedItem().(listItem)
	if !ok {
		if len(m.records) == 0 {
			return panel.Render("No records available")
		}
		return panel.Render("No item selected")
	}

	lines := append([]string{headingStyle.Render(selected.Title()), ""}, m.buildRightLines(selected.record)...)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// buildRightLines renders the detail view of r for the current mode.
func (m model) buildRightLines(r report.Report) []string {
	var lines []string
	section := func(title, body string) {
		if body == "" {
			body = labelStyle.Render("none")
		}
		lines = append(lines,
			sectionStyle.Render(title+":"),
			boxStyle.Width(m.width*2/3-6).Render(body),
		)
	}

	switch m.currentMode {
	case modeSequence:
		section("Sequence", report.Colorize(r.Sequence))
		section("Transcript", report.Colorize(r.Transcript))
		section("Reverse complement", report.Colorize(r.ReverseComplement))
		lines = append(lines, labelStyle.Render(fmt.Sprintf("GC windows (%d): %v", r.WindowSize, r.GCWindows)))
	case modeFrames:
		for i, f := range r.Frames {
			section("Frame "+bioseq.FrameNames[i], strings.Join(f, ""))
		}
	case modeProteins:
		section(fmt.Sprintf("Proteins (%d)", len(r.Proteins)), strings.Join(r.Proteins, "\n"))
		section("Codon usage ("+r.CodonUsageAA+")", report.FormatUsage(r.CodonUsage))
	}
	for _, n := range r.Notes {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%s: %s", n.Field, n.Kind)))
	}
	return lines
}

// keyHelp lists the key bindings shown in the help overlay.
var keyHelp = [][2]string{
	{"up/down j/k", "move through records"},
	{"/", "filter by header"},
	{"1", "sequence, transcript, reverse complement"},
	{"2", "the six reading frames"},
	{"3", "proteins and codon usage"},
	{"tab", "next view"},
	{"h", "toggle help"},
	{"q ctrl+c", "quit"},
}

func (m model) renderStatusBar() string {
	pos := fmt.Sprintf(" %d/%d ", m.selectedIndex+1, len(m.records))
	view := " " + m.currentMode.String() + " "
	hint := labelStyle.Render(" h help  q quit ")
	gap := m.width - lipgloss.Width(pos) - lipgloss.Width(view) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return barStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, pos, sectionStyle.Render(view), strings.Repeat(" ", gap), hint),
	)
}

func (m model) renderHelpModal() string {
	rows := []string{headingStyle.Render("Keys"), ""}
	for _, kb := range keyHelp {
		rows = append(rows, keyStyle.Render(kb[0])+kb[1])
	}
	rows = append(rows, "", labelStyle.Render(fmt.Sprintf("%d records, viewing %s", len(m.records), m.currentMode)))

	box := panelStyle.BorderForeground(violet).Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func main() {
	cmd := &cobra.Command{
		Use:   "tui [reports.json]",
		Short: "Browse sequence reports interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "reports.json"
			if len(args) == 1 {
				path = args[0]
			}
			records, err := report.LoadJSON(path)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(initialModel(records), tea.WithAltScreen()).Run()
			return err
		},
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
