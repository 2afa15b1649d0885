package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/llgen"
	"github.com/npillmayer/llgen/ll/scanner"
	"github.com/npillmayer/llgen/ll/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var scanFlags = struct {
	goTokens *bool
	grammar  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "scan <text>",
		Short: "Tokenize a text and show the terminals it maps to",
		Example: `  llgen scan 'int32 x = y * 42'
  llgen scan --grammar expr.grammar '(a + 1) * b'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}
	scanFlags.goTokens = cmd.Flags().Bool("go", false, "use the Go tokenizer instead of the class tokenizer")
	scanFlags.grammar = cmd.Flags().StringP("grammar", "g", "", "flag tokens which are no terminals of this grammar")
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	tokens, err := tokenize(input, *scanFlags.goTokens)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	var known map[string]bool
	if *scanFlags.grammar != "" {
		ga, err := loadAnalysis(*scanFlags.grammar)
		if err != nil {
			return err
		}
		known = make(map[string]bool)
		for _, t := range ga.Grammar().Terminals() {
			known[t.Name] = true
		}
	}
	return writeTokens(cmd.OutOrStdout(), tokens, known)
}

// tokenize scans input up to EOF. The first scanner error is returned
// together with all the tokens found.
func tokenize(input string, goTokens bool) ([]llgen.Token, error) {
	if !goTokens {
		ct, err := lexmach.NewClassTokenizer(lexmach.DefaultClasses())
		if err != nil {
			return nil, err
		}
		return ct.ScanAll(input)
	}
	var first error
	tok := scanner.GoTokenizer("input", strings.NewReader(input))
	tok.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	var tokens []llgen.Token
	for t := tok.NextToken(); t.TokType() != scanner.EOF; t = tok.NextToken() {
		tokens = append(tokens, t)
	}
	return tokens, first
}

func writeTokens(w io.Writer, tokens []llgen.Token, known map[string]bool) error {
	header := []string{"class", "lexeme", "span", "terminal"}
	if known != nil {
		header = append(header, "in grammar")
	}
	data := pterm.TableData{header}
	for _, t := range tokens {
		term := scanner.Terminal(t)
		row := []string{t.Class(), t.Lexeme(), t.Span().String(), term}
		if known != nil {
			if known[term] {
				row = append(row, "yes")
			} else {
				row = append(row, "NO")
			}
		}
		data = append(data, row)
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
