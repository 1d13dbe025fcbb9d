package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("INPUT", "HEX")

	table.AddRow("red", "#ff0000")
	table.AddRow("navy")
	table.AddRow("teal", "#008080", "extra")

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("short row not padded: %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("long row not truncated: %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("INPUT", "HEX")
	table.AddRow("rebeccapurple", "#663399")
	table.AddRow("red", "#ff0000")

	want := strings.Join([]string{
		"INPUT          HEX",
		"-------------  -------",
		"rebeccapurple  #663399",
		"red            #ff0000",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() with no headers = %q", got)
	}

	got := NewTable("A").Render()
	if got != "A\n-\n" {
		t.Errorf("Render() with no rows = %q", got)
	}
}

func TestTableWriteTo(t *testing.T) {
	table := NewTable("K", "V")
	table.AddRow("ratio", "21.00:1")

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != buf.Len() || !strings.Contains(buf.String(), "ratio  21.00:1") {
		t.Errorf("WriteTo() wrote %d bytes: %q", n, buf.String())
	}
}
