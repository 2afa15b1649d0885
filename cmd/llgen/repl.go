package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/llgen/ll"
	"github.com/npillmayer/llgen/ll/report"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Query the analysis of a grammar interactively",
		Long: `repl loads a grammar and accepts commands:
  first X        FIRST set of symbol X
  follow X       FOLLOW set of non-terminal X
  firstp X       FIRST+ set of symbol X
  lookup A t     table entry for non-terminal A and lookahead t
  table          the parse table
  rules          the numbered rules
  conflicts      LL(1) conflicts
  quit           leave (or <ctrl>D)`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	ga, err := loadAnalysis(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("llgen> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{GA: ga, out: cmd.OutOrStdout()}
	pterm.Info.Printfln("Grammar %s loaded, quit with <ctrl>D", ga.Grammar().Name)
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
	return nil
}

// Intp is our interpreter object
type Intp struct {
	GA  *ll.LLAnalysis
	out io.Writer
}

var errUsage = errors.New("usage")

// Eval executes a single command line. It returns true if the user wants
// to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %q", line)
	switch cmd := args[0]; cmd {
	case "quit", "exit":
		return true, nil
	case "first", "follow", "firstp":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: %s <symbol>", errUsage, cmd)
		}
		A, err := intp.symbol(args[1])
		if err != nil {
			return false, err
		}
		var S *ll.SymbolSet
		switch cmd {
		case "first":
			S = intp.GA.First(A)
		case "follow":
			if !A.IsNonTerminal() && !A.IsEpsilon() {
				return false, fmt.Errorf("FOLLOW is defined for non-terminals only, %s is a %s", A, A.Kind)
			}
			S = intp.GA.Follow(A)
		default:
			S = intp.GA.FirstPlus(A)
		}
		_, err = fmt.Fprintf(intp.out, "%s(%s) = %v\n", strings.ToUpper(cmd), A, S)
		return false, err
	case "lookup":
		if len(args) != 3 {
			return false, fmt.Errorf("%w: lookup <non-terminal> <terminal>", errUsage)
		}
		A, err := intp.symbol(args[1])
		if err != nil {
			return false, err
		}
		t, err := intp.symbol(args[2])
		if err != nil {
			return false, err
		}
		r, ok := intp.GA.Table().Rule(A, t)
		if !ok {
			_, err = fmt.Fprintf(intp.out, "M[%s,%s] = %s\n", A, t, report.Absent)
			return false, err
		}
		_, err = fmt.Fprintf(intp.out, "M[%s,%s] = %d: %v\n", A, t, r.Alt, r)
		return false, err
	case "table":
		return false, report.WriteTable(intp.out, intp.GA, report.Local)
	case "rules":
		return false, report.WriteRules(intp.out, intp.GA.Grammar())
	case "conflicts":
		return false, report.WriteConflicts(intp.out, intp.GA)
	}
	return false, fmt.Errorf("unknown command %q", args[0])
}

func (intp *Intp) symbol(name string) (*ll.Symbol, error) {
	A := intp.GA.Grammar().Symbol(name)
	if A == nil {
		return nil, fmt.Errorf("no symbol %q in grammar %s", name, intp.GA.Grammar().Name)
	}
	return A, nil
}
