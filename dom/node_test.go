package dom

import (
	"strings"
	"testing"
)

func parse(t *testing.T, html string) Element {
	t.Helper()
	el, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return el
}

func TestText_CollapsesWhitespace(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"plain", `<td>50</td>`, "50"},
		{"internal runs", "<td>  50;\n\t trucks   30 </td>", "50; trucks 30"},
		{"nested elements", `<td><a href="#">Belgium</a>:<i>Flanders</i></td>`, "Belgium:Flanders"},
		{"empty", `<td>   </td>`, ""},
		{"line break", `<td>100<br>110</td>`, "100 110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(t, "<table><tr>"+tt.html+"</tr></table>")
			cells := root.Descendants("td")
			if len(cells) != 1 {
				t.Fatalf("got %d cells, want 1", len(cells))
			}
			if got := cells[0].Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntAttr(t *testing.T) {
	root := parse(t, `<table><tr>
		<td rowspan="3">a</td>
		<td rowspan="x">b</td>
		<td>c</td>
	</tr></table>`)
	cells := root.Descendants("td")

	if got := cells[0].IntAttr("rowspan", 1); got != 3 {
		t.Errorf("numeric rowspan = %d, want 3", got)
	}
	if got := cells[1].IntAttr("rowspan", 1); got != 1 {
		t.Errorf("non-numeric rowspan = %d, want default 1", got)
	}
	if got := cells[2].IntAttr("rowspan", 1); got != 1 {
		t.Errorf("missing rowspan = %d, want default 1", got)
	}
}

func TestDescendants_DocumentOrder(t *testing.T) {
	root := parse(t, `<table>
		<tr><td>one</td><td>two</td></tr>
		<tr><td>three</td></tr>
	</table>`)

	cells := root.Descendants("td")
	want := []string{"one", "two", "three"}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, w := range want {
		if got := cells[i].Text(); got != w {
			t.Errorf("cell %d = %q, want %q", i, got, w)
		}
	}
}

func TestDetach(t *testing.T) {
	root := parse(t, `<p>keep<sup>gone</sup></p>`)

	sups := root.Descendants("sup")
	if len(sups) != 1 {
		t.Fatalf("got %d sup elements, want 1", len(sups))
	}
	sups[0].Detach()

	if got := root.Descendants("p")[0].Text(); got != "keep" {
		t.Errorf("Text() after Detach = %q, want 'keep'", got)
	}

	// Detaching again is a no-op.
	sups[0].Detach()
}

func TestClone_Independent(t *testing.T) {
	root := parse(t, `<p>text<sup>note</sup></p>`)
	p := root.Descendants("p")[0]

	clone := p.Clone()
	clone.Descendants("sup")[0].Detach()

	if got := clone.Text(); got != "text" {
		t.Errorf("clone Text() = %q, want 'text'", got)
	}
	if got := p.Text(); got != "textnote" {
		t.Errorf("original Text() = %q, want 'textnote'", got)
	}
}

func TestStripDecorations(t *testing.T) {
	root := parse(t, `<table><tr>
		<td>100<sup>[2]</sup></td>
		<td><img src="sign.png">50</td>
	</tr></table>`)
	table := root.Descendants("table")[0]

	clean := StripDecorations(table)

	cells := clean.Descendants("td")
	if got := cells[0].Text(); got != "100" {
		t.Errorf("stripped cell 0 = %q, want '100'", got)
	}
	if got := cells[1].Text(); got != "50" {
		t.Errorf("stripped cell 1 = %q, want '50'", got)
	}

	// Original table is untouched.
	if got := table.Descendants("td")[0].Text(); got != "100[2]" {
		t.Errorf("original cell 0 = %q, want '100[2]'", got)
	}
}

func TestStripDecorations_NoDecorations(t *testing.T) {
	root := parse(t, `<table><tr><td>plain</td></tr></table>`)
	table := root.Descendants("table")[0]

	clean := StripDecorations(table)
	if got := clean.Descendants("td")[0].Text(); got != "plain" {
		t.Errorf("Text() = %q, want 'plain'", got)
	}
}
