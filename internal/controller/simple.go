package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySources prints one row per offset group.
func (s *SimpleUI) DisplaySources(sources []m.SourceSummary) error {
	if len(sources) == 0 {
		s.printf("No sources found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Source", "Kind", "Offset", "Listeners"})

	groups := 0

	for _, src := range sources {
		if len(src.Offsets) == 0 {
			table.Append([]string{string(src.Path), kindOf(src.IsDirectory), "-", "0"})
			continue
		}

		for _, off := range src.Offsets {
			table.Append([]string{string(src.Path), kindOf(src.IsDirectory), offsetLabel(off.Offset), fmt.Sprintf("%d", off.Listeners)})

			groups++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Sources %d", len(sources)), "", fmt.Sprintf("%d", groups), ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayResources prints the collected resources, with size and hash when
// the content was fingerprinted.
func (s *SimpleUI) DisplayResources(records []m.CatalogRecord) error {
	if len(records) == 0 {
		s.printf("No resources found\n")
		return nil
	}

	withHash := false

	for _, r := range records {
		if r.Hash != "" {
			withHash = true
			break
		}
	}

	header := []string{"Set", "Source", "Offset", "Name"}
	if withHash {
		header = append(header, "Size", "Hash")
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, header)

	for _, r := range records {
		name := r.Name
		if r.IsDir {
			name += "/"
		}

		row := []string{r.RootSet, string(r.Source), offsetLabel(r.Offset), name}
		if withHash {
			row = append(row, fmt.Sprintf("%d", r.Size), r.Hash)
		}

		table.Append(row)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("%d resources\n", len(records))

	return nil
}

// DisplayIndexed prints where the catalog was written.
func (s *SimpleUI) DisplayIndexed(count int, db m.Path) error {
	s.printf("Indexed %d resources into %s\n", count, db)

	return nil
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
