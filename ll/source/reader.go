package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/llgen/ll"
)

// ReadRows reads productions in the format given by cfg. Rows are returned in
// file order. Lines which cannot be split into a left-hand side and a
// right-hand side are reported as ll.ErrMalformedGrammar.
func ReadRows(r io.Reader, cfg Config) ([]ll.Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Format {
	case FormatTSV:
		return readTSV(r)
	default:
		return readArrows(r, cfg.Delimiter)
	}
}

func readArrows(r io.Reader, delim string) ([]ll.Row, error) {
	var rows []ll.Row
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lhs, rhs, found := strings.Cut(line, delim)
		if !found {
			return nil, fmt.Errorf("%w: line %d: missing %q", ll.ErrMalformedGrammar, lineno, delim)
		}
		rows = append(rows, ll.Row{LHS: strings.TrimSpace(lhs), RHS: strings.TrimSpace(rhs)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func readTSV(r io.Reader) ([]ll.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var rows []ll.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ll.ErrMalformedGrammar, err)
		}
		line, _ := cr.FieldPos(0)
		lhs := strings.TrimSpace(record[0])
		if lhs == "" {
			return nil, fmt.Errorf("%w: line %d: empty left-hand side", ll.ErrMalformedGrammar, line)
		}
		rows = append(rows, ll.Row{LHS: lhs, RHS: strings.Join(record[1:], " ")})
	}
	return rows, nil
}

// Load reads a grammar file and builds a grammar from it. If cfg does not
// name the grammar, the base name of the file is used.
func Load(path string, cfg Config) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadRows(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("grammar file %q: %w", path, err)
	}
	name := cfg.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	g, err := ll.NewGrammarBuilder(name, cfg.Options()...).Rows(rows...).Grammar()
	if err != nil {
		return nil, fmt.Errorf("grammar file %q: %w", path, err)
	}
	return g, nil
}
