package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// StyledUI implements UI with colored output for interactive terminals.
type StyledUI struct {
	output io.Writer

	title  lipgloss.Style
	path   lipgloss.Style
	offset lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(output io.Writer) *StyledUI {
	return &StyledUI{
		output: output,
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		path:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		offset: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// DisplaySources prints each source followed by its offset groups.
func (u *StyledUI) DisplaySources(sources []m.SourceSummary) error {
	if len(sources) == 0 {
		u.println(u.muted.Render("No sources found"))
		return nil
	}

	u.println(u.title.Render(fmt.Sprintf("Sources (%d)", len(sources))))

	for _, src := range sources {
		u.println(fmt.Sprintf("%s %s", u.path.Render(string(src.Path)), u.muted.Render("["+kindOf(src.IsDirectory)+"]")))

		for _, off := range src.Offsets {
			u.println(fmt.Sprintf("  %s %s",
				u.offset.Render(offsetLabel(off.Offset)),
				u.muted.Render(fmt.Sprintf("%d listener(s)", off.Listeners)),
			))
		}
	}

	return nil
}

// DisplayResources prints resources grouped by root set and source.
func (u *StyledUI) DisplayResources(records []m.CatalogRecord) error {
	if len(records) == 0 {
		u.println(u.muted.Render("No resources found"))
		return nil
	}

	var set string

	var source m.Path

	for i, r := range records {
		if i == 0 || r.RootSet != set {
			set = r.RootSet
			source = ""

			u.println(u.title.Render(set))
		}

		if r.Source != source {
			source = r.Source

			u.println("  " + u.path.Render(string(source)))
		}

		var b strings.Builder

		b.WriteString("    ")

		if r.Offset != "" {
			b.WriteString(u.offset.Render(r.Offset))
		}

		b.WriteString(r.Name)

		if r.IsDir {
			b.WriteString("/")
		}

		if r.Hash != "" {
			b.WriteString(" ")
			b.WriteString(u.muted.Render(fmt.Sprintf("%d %s", r.Size, r.Hash)))
		}

		u.println(b.String())
	}

	u.println(u.accent.Render(fmt.Sprintf("%d resources", len(records))))

	return nil
}

// DisplayIndexed prints where the catalog was written.
func (u *StyledUI) DisplayIndexed(count int, db m.Path) error {
	u.println(fmt.Sprintf("Indexed %s resources into %s",
		u.accent.Render(fmt.Sprintf("%d", count)),
		u.path.Render(string(db)),
	))

	return nil
}

func (u *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(u.output, line)
}
