package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llgen/ll"
	"github.com/pterm/pterm"
)

// Numbering selects how table cells refer to rules.
type Numbering int

// Global numbers rules across the grammar, Local per left-hand side.
const (
	Global Numbering = iota
	Local
)

// Absent is printed for table cells without a rule.
const Absent = "-"

// TableData returns the parse table of ga as rows of strings. The first row
// holds the column headers.
func TableData(ga *ll.LLAnalysis, numbering Numbering) pterm.TableData {
	T := ga.Table()
	cols := T.Columns()
	header := make([]string, 0, len(cols)+1)
	header = append(header, "")
	for _, t := range cols {
		header = append(header, t.Name)
	}
	data := pterm.TableData{header}
	for _, A := range T.Rows() {
		row := make([]string, 0, len(cols)+1)
		row = append(row, A.Name)
		for _, t := range cols {
			row = append(row, cellString(T, A, t, numbering))
		}
		data = append(data, row)
	}
	return data
}

func cellString(T *ll.ParseTable, A, t *ll.Symbol, numbering Numbering) string {
	r, ok := T.Rule(A, t)
	if !ok {
		return Absent
	}
	if numbering == Local {
		return fmt.Sprintf("%d", r.Alt)
	}
	return fmt.Sprintf("%d", r.Serial)
}

// WriteTable renders the parse table of ga.
func WriteTable(w io.Writer, ga *ll.LLAnalysis, numbering Numbering) error {
	return render(w, TableData(ga, numbering))
}

// SetsData returns a family of sets column-wise: the first row holds the
// non-terminals, each column lists the members of the set below its
// non-terminal. Sets of terminals are left out.
func SetsData(sets *ll.SymbolSets) pterm.TableData {
	var header []string
	var columns [][]string
	height := 0
	sets.Each(func(A *ll.Symbol, S *ll.SymbolSet) {
		if !A.IsNonTerminal() {
			return
		}
		header = append(header, A.Name)
		names := S.Names()
		columns = append(columns, names)
		if len(names) > height {
			height = len(names)
		}
	})
	data := pterm.TableData{header}
	for i := 0; i < height; i++ {
		row := make([]string, len(columns))
		for j, col := range columns {
			if i < len(col) {
				row[j] = col[i]
			}
		}
		data = append(data, row)
	}
	return data
}

// WriteSets renders a family of sets, headed by a title line.
func WriteSets(w io.Writer, title string, sets *ll.SymbolSets) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	return render(w, SetsData(sets))
}

// WriteRules lists the rules of g, numbered by serial and by alternative.
func WriteRules(w io.Writer, g *ll.Grammar) error {
	data := pterm.TableData{{"#", "alt", "rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{
			fmt.Sprintf("%d", r.Serial),
			fmt.Sprintf("%d", r.Alt),
			ruleString(r),
		})
	}
	return render(w, data)
}

// ruleString formats a rule the way grammar files spell it.
func ruleString(r *ll.Rule) string {
	rhs := r.RHS()
	if len(rhs) == 0 {
		return r.LHS.Name + " -> " + ll.Epsilon.Name
	}
	names := make([]string, len(rhs))
	for i, A := range rhs {
		names[i] = A.Name
	}
	return r.LHS.Name + " -> " + strings.Join(names, " ")
}

// WriteConflicts lists the LL(1) conflicts of ga, if any, followed by the
// claims rejected while building the table.
func WriteConflicts(w io.Writer, ga *ll.LLAnalysis) error {
	conflicts := ga.Conflicts()
	if len(conflicts) == 0 {
		if _, err := fmt.Fprintf(w, "grammar %s is LL(1)\n", ga.Grammar().Name); err != nil {
			return err
		}
	} else {
		data := pterm.TableData{{"non-terminal", "lookahead", "alternatives", "table"}}
		for _, c := range conflicts {
			alt, _ := ga.Table().Lookup(c.LHS, c.Terminal)
			data = append(data, []string{
				c.LHS.Name, c.Terminal.Name, fmt.Sprintf("%v", c.Alts), fmt.Sprintf("%d", alt),
			})
		}
		if err := render(w, data); err != nil {
			return err
		}
	}
	claims := ga.Table().RejectedClaims()
	if len(claims) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%d claims rejected while building the table:\n", len(claims)); err != nil {
		return err
	}
	for _, c := range claims {
		if _, err := fmt.Fprintf(w, "  %s\n", c); err != nil {
			return err
		}
	}
	return nil
}

func render(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		tracer().Errorf("cannot render table: %v", err)
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
