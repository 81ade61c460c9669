package cli

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// memberPreviewLen caps how many member points a table row shows.
const memberPreviewLen = 4

// browseCommand creates the browse command for interactive component
// inspection after a cluster run.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		k       int
		fromURL string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "browse [points-file]",
		Short: "Inspect cluster components interactively",
		Long: `Inspect cluster components interactively.

The browse command runs a cluster construction and opens a terminal UI
listing every component by size. Selecting a component prints its member
points.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := c.readInput(cmd, args, fromURL, noCache)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			if k == 0 {
				k = c.Config.Defaults.K
			}

			res, err := runner.Run(cmd.Context(), input, pipeline.Options{
				Mode:   pipeline.ModeCluster,
				K:      k,
				Logger: c.Logger,
			})
			if err != nil {
				return err
			}

			points, err := geo.ParsePoints(bytes.NewReader(input))
			if err != nil {
				return err
			}
			components, err := collectComponents(res, points)
			if err != nil {
				return err
			}

			model := NewComponentListModel(components)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			if m, ok := final.(ComponentListModel); ok && m.Selected != nil {
				printComponent(*m.Selected, points)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "budget", "k", 0, "number of closest pairs to merge (default from config)")
	cmd.Flags().StringVar(&fromURL, "from-url", "", "fetch the point file from a URL")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// Component is one forest component prepared for display.
type Component struct {
	// Rank is the 1-based position when ordered by size, largest first.
	Rank int

	// Members holds the component's point indices in ascending order.
	Members []int
}

// collectComponents groups points by component, largest first. Ties order
// by smallest member index so the listing is deterministic.
func collectComponents(res *pipeline.Result, points []geo.Point) ([]Component, error) {
	forest, err := pipeline.RebuildForest(res)
	if err != nil {
		return nil, err
	}

	byRoot := make(map[int][]int)
	for i := range points {
		root := forest.Forest.Find(i)
		byRoot[root] = append(byRoot[root], i)
	}

	components := make([]Component, 0, len(byRoot))
	for _, members := range byRoot {
		components = append(components, Component{Members: members})
	}
	sort.Slice(components, func(i, j int) bool {
		if len(components[i].Members) != len(components[j].Members) {
			return len(components[i].Members) > len(components[j].Members)
		}
		return components[i].Members[0] < components[j].Members[0]
	})
	for i := range components {
		components[i].Rank = i + 1
	}
	return components, nil
}

// printComponent prints a component's full member list after selection.
func printComponent(comp Component, points []geo.Point) {
	printSuccess("Component #%d (%d points)", comp.Rank, len(comp.Members))
	for _, idx := range comp.Members {
		printDetail("%4d  %s", idx, points[idx])
	}
}

// =============================================================================
// ComponentListModel - Interactive component browsing
// =============================================================================

// ComponentListModel is the bubbletea model for component selection.
type ComponentListModel struct {
	Components []Component
	Cursor     int
	Selected   *Component
	Height     int
	Offset     int
}

// NewComponentListModel creates a new component list model.
func NewComponentListModel(components []Component) ComponentListModel {
	return ComponentListModel{
		Components: components,
		Height:     15,
	}
}

func (m ComponentListModel) Init() tea.Cmd {
	return nil
}

func (m ComponentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			comp := m.Components[m.Cursor]
			m.Selected = &comp
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ComponentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Component"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Components) {
		end = len(m.Components)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		comp := m.Components[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("#%d", comp.Rank),
			fmt.Sprintf("%d", len(comp.Members)),
			memberPreview(comp.Members),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Component", "Size", "Points").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Components))))

	return b.String()
}

// memberPreview renders the first few member indices of a component.
func memberPreview(members []int) string {
	shown := members
	suffix := ""
	if len(shown) > memberPreviewLen {
		shown = shown[:memberPreviewLen]
		suffix = ", …"
	}
	parts := make([]string, len(shown))
	for i, idx := range shown {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return strings.Join(parts, ", ") + suffix
}
