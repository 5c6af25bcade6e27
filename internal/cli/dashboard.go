package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/internal/render"
	"github.com/valter-silva-au/covgap/pkg/models"
)

var dashboardInput string

// Style definitions.
var (
	dashTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	dashPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	dashHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	dashSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("240"))

	coverageFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	coverageWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	coverageCritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	coverageNoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	dashHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type dashboardModel struct {
	inputPath string
	width     int
	height    int

	// Data.
	coverages []models.SystemCoverage
	summary   models.CoverageSummary

	// State.
	selected int
	loading  bool
	err      error
}

// coverageLoadedMsg carries loaded analysis results back to the model.
type coverageLoadedMsg struct {
	coverages []models.SystemCoverage
	summary   models.CoverageSummary
	err       error
}

func newDashboardModel(inputPath string) dashboardModel {
	return dashboardModel{
		inputPath: inputPath,
		loading:   true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadCoverage(m.inputPath)
}

// loadCoverage returns a command that loads and analyzes the input file.
func loadCoverage(path string) tea.Cmd {
	return func() tea.Msg {
		if Loader == nil {
			return coverageLoadedMsg{err: fmt.Errorf("record loader not initialized")}
		}
		records, err := Loader.Load(path)
		if err != nil {
			return coverageLoadedMsg{err: err}
		}
		coverages, summary := core.Analyze(records)
		return coverageLoadedMsg{coverages: coverages, summary: summary}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.coverages)-1 {
				m.selected++
			}
			return m, nil
		case "r":
			m.loading = true
			return m, loadCoverage(m.inputPath)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case coverageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.coverages = msg.coverages
		m.summary = msg.summary
		m.err = nil
		if m.selected >= len(m.coverages) {
			m.selected = 0
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := dashTitleStyle.Render(" Coverage Dashboard ")
	help := dashHelpStyle.Render("up/down: select system | r: reload | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading %s...\n\n%s", title, m.inputPath, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	systemsPanel := dashPanelStyle.Render(m.renderSystemsPanel())
	detailPanel := dashPanelStyle.Render(m.renderDetailPanel())

	var body string
	if m.width-2 > 90 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, systemsPanel, detailPanel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, systemsPanel, detailPanel)
	}

	avg, defined := m.summary.AverageCoverage()
	summaryLine := fmt.Sprintf("  %d systems | required %d/%d (%s) | optional %d/%d",
		m.summary.Systems,
		m.summary.RequiredCovered, m.summary.RequiredTotal,
		render.FormatPercentage(avg, defined),
		m.summary.OptionalCovered, m.summary.OptionalTotal)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", title, body, summaryLine, help)
}

func (m dashboardModel) renderSystemsPanel() string {
	var b strings.Builder
	b.WriteString(dashHeaderStyle.Render("Systems"))
	b.WriteString("\n")

	if len(m.coverages) == 0 {
		b.WriteString("  No systems found.")
		return b.String()
	}

	for i, cov := range m.coverages {
		ratio, defined := cov.CoverageRatio()
		pct := styleForCoverage(ratio, defined).Render(render.FormatPercentage(ratio, defined))
		line := fmt.Sprintf("  %-20s %s", cov.System, pct)
		if i == m.selected {
			line = dashSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m dashboardModel) renderDetailPanel() string {
	var b strings.Builder

	if len(m.coverages) == 0 {
		b.WriteString(dashHeaderStyle.Render("Detail"))
		b.WriteString("\n  Nothing to show.")
		return b.String()
	}

	cov := m.coverages[m.selected]
	b.WriteString(dashHeaderStyle.Render(cov.System))
	b.WriteString("\n")

	ratio, defined := cov.CoverageRatio()
	b.WriteString(fmt.Sprintf("  %-18s %d/%d (%s)\n", "Required:",
		cov.RequiredCovered, cov.RequiredTotal, render.FormatPercentage(ratio, defined)))
	b.WriteString(fmt.Sprintf("  %-18s %d/%d\n", "Optional:",
		cov.OptionalCovered, cov.OptionalTotal))

	if len(cov.MissingMonitors) == 0 {
		b.WriteString("\n  No missing required monitors.")
		return b.String()
	}

	b.WriteString("\n  Missing required monitors:\n")
	for _, record := range cov.MissingMonitors {
		line := "    - " + record.Monitor
		if record.Component != "" {
			line += " (" + record.Component + ")"
		}
		b.WriteString(coverageCritStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// styleForCoverage colors a ratio by the default gap thresholds.
func styleForCoverage(ratio float64, defined bool) lipgloss.Style {
	thresholds := core.DefaultGapThresholds()
	switch {
	case !defined:
		return coverageNoneStyle
	case ratio < thresholds.CritBelow:
		return coverageCritStyle
	case ratio < thresholds.WarnBelow:
		return coverageWarnStyle
	default:
		return coverageFullStyle
	}
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive coverage dashboard",
	Long: `Browse per-system coverage interactively.

The left panel lists systems with their required coverage; the detail panel
shows counts and missing required monitors for the selected system.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		program := tea.NewProgram(newDashboardModel(dashboardInput), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardInput, "input", "i", "", "Input data file (JSON, CSV, or YAML)")
	_ = dashboardCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(dashboardCmd)
}
