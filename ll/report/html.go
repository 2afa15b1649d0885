package report

import (
	"fmt"
	"html"
	"io"

	"github.com/npillmayer/llgen/ll"
)

// TableAsHTML exports the parse table of ga in HTML-format. Cells which
// more than one alternative predicts are highlighted.
func TableAsHTML(w io.Writer, ga *ll.LLAnalysis, numbering Numbering) error {
	T := ga.Table()
	conflicting := make(map[[2]*ll.Symbol]bool)
	for _, c := range ga.Conflicts() {
		conflicting[[2]*ll.Symbol{c.LHS, c.Terminal}] = true
	}
	hw := &htmlWriter{w: w}
	hw.write("<html><body>\n")
	hw.write(fmt.Sprintf("LL(1) table of grammar %s, size = %d<p>\n",
		html.EscapeString(ga.Grammar().Name), T.Size()))
	hw.write("<table border=1 cellspacing=0 cellpadding=5>\n")
	hw.write("<tr bgcolor=#cccccc><td></td>\n")
	for _, t := range T.Columns() {
		hw.write(fmt.Sprintf("<td>%s</td>", html.EscapeString(t.Name)))
	}
	hw.write("</tr>\n")
	for _, A := range T.Rows() {
		hw.write(fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for _, t := range T.Columns() {
			td := cellString(T, A, t, numbering)
			if td == Absent {
				td = "&nbsp;"
			}
			if conflicting[[2]*ll.Symbol{A, t}] {
				hw.write("<td bgcolor=#ffcccc>")
			} else {
				hw.write("<td>")
			}
			hw.write(td)
			hw.write("</td>\n")
		}
		hw.write("</tr>\n")
	}
	hw.write("</table></body></html>\n")
	return hw.err
}

// htmlWriter remembers the first write error and drops subsequent writes.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) write(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}
