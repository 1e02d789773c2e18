package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/rootscan/internal/model"
)

func newBufferedCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplaySources_PrintsTable(t *testing.T) {
	cmd, buf := newBufferedCommand()
	ui := NewSimpleUI(cmd)

	sources := []m.SourceSummary{
		{
			Path: "/srv/app.war",
			URL:  "jar:file:/srv/app.war",
			Offsets: []m.OffsetSummary{
				{Offset: "WEB-INF/classes/", Listeners: 2},
				{Offset: "", Listeners: 0},
			},
		},
		{Path: "/srv/classes", URL: "file:/srv/classes", IsDirectory: true},
	}

	if err := ui.DisplaySources(sources); err != nil {
		t.Fatalf("DisplaySources() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"SOURCE",
		"/srv/app.war",
		"WEB-INF/classes/",
		"archive",
		"/srv/classes",
		"dir",
		"TOTAL SOURCES 2",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySources_Empty(t *testing.T) {
	cmd, buf := newBufferedCommand()

	if err := NewSimpleUI(cmd).DisplaySources(nil); err != nil {
		t.Fatalf("DisplaySources() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No sources found") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayResources(t *testing.T) {
	t.Run("names only", func(t *testing.T) {
		cmd, buf := newBufferedCommand()

		records := []m.CatalogRecord{
			{RootSet: "web", Source: "/srv/app.war", Offset: "WEB-INF/classes/", Name: "com/App.class"},
			{RootSet: "web", Source: "/srv/app.war", Name: "META-INF", IsDir: true},
		}

		if err := NewSimpleUI(cmd).DisplayResources(records); err != nil {
			t.Fatalf("DisplayResources() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"com/App.class", "META-INF/", "2 resources"} {
			if !strings.Contains(output, want) {
				t.Fatalf("output missing %q\noutput:\n%s", want, output)
			}
		}

		if strings.Contains(output, "HASH") {
			t.Fatalf("hash column shown without fingerprints\noutput:\n%s", output)
		}
	})

	t.Run("with fingerprints", func(t *testing.T) {
		cmd, buf := newBufferedCommand()

		records := []m.CatalogRecord{
			{RootSet: "cli", Source: "/srv/classes", Name: "a.txt", Size: 12, Hash: "00ff00ff00ff00ff"},
		}

		if err := NewSimpleUI(cmd).DisplayResources(records); err != nil {
			t.Fatalf("DisplayResources() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"HASH", "00ff00ff00ff00ff", "12"} {
			if !strings.Contains(output, want) {
				t.Fatalf("output missing %q\noutput:\n%s", want, output)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		cmd, buf := newBufferedCommand()

		if err := NewSimpleUI(cmd).DisplayResources(nil); err != nil {
			t.Fatalf("DisplayResources() error = %v", err)
		}

		if !strings.Contains(buf.String(), "No resources found") {
			t.Fatalf("unexpected output:\n%s", buf.String())
		}
	})
}

func TestSimpleUI_DisplayIndexed(t *testing.T) {
	cmd, buf := newBufferedCommand()

	if err := NewSimpleUI(cmd).DisplayIndexed(7, "/tmp/catalog.db"); err != nil {
		t.Fatalf("DisplayIndexed() error = %v", err)
	}

	if got, want := buf.String(), "Indexed 7 resources into /tmp/catalog.db\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
