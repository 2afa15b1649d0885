package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/llgen/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprArrows = `// expression grammar
*Goal -> Expr
Expr -> Term Expr'

Expr' -> + Term Expr'
Expr' -> ε
Term -> num
Term -> ( Expr )
`

func Test_ReadRows(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		cfg       Config
		expect    []ll.Row
		expectErr error
	}{
		{
			name:  "arrows",
			input: exprArrows,
			cfg:   DefaultConfig(),
			expect: []ll.Row{
				{LHS: "*Goal", RHS: "Expr"},
				{LHS: "Expr", RHS: "Term Expr'"},
				{LHS: "Expr'", RHS: "+ Term Expr'"},
				{LHS: "Expr'", RHS: "ε"},
				{LHS: "Term", RHS: "num"},
				{LHS: "Term", RHS: "( Expr )"},
			},
		},
		{
			name:  "arrows with empty right-hand side",
			input: "*S -> A\r\nA ->\n",
			cfg:   DefaultConfig(),
			expect: []ll.Row{
				{LHS: "*S", RHS: "A"},
				{LHS: "A", RHS: ""},
			},
		},
		{
			name:  "custom delimiter",
			input: "*S ::= a b\n",
			cfg:   Config{Format: FormatArrow, Delimiter: "::=", Epsilon: "~", StartMarker: "*"},
			expect: []ll.Row{
				{LHS: "*S", RHS: "a b"},
			},
		},
		{
			name:      "missing delimiter",
			input:     "*S -> a\nA b\n",
			cfg:       DefaultConfig(),
			expectErr: ll.ErrMalformedGrammar,
		},
		{
			name:  "tsv",
			input: "*S\tA b\nA\ta\tA\nA\t\n",
			cfg:   Config{Format: FormatTSV, Epsilon: "ε", StartMarker: "*"},
			expect: []ll.Row{
				{LHS: "*S", RHS: "A b"},
				{LHS: "A", RHS: "a A"},
				{LHS: "A", RHS: ""},
			},
		},
		{
			name:      "tsv with empty left-hand side",
			input:     "*S\ta\n\tb\n",
			cfg:       Config{Format: FormatTSV, Epsilon: "ε", StartMarker: "*"},
			expectErr: ll.ErrMalformedGrammar,
		},
		{
			name:      "unknown format",
			input:     "*S -> a\n",
			cfg:       Config{Format: "xml", Epsilon: "ε", StartMarker: "*"},
			expectErr: ErrInvalidConfig,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rows, err := ReadRows(strings.NewReader(tc.input), tc.cfg)
			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, rows)
		})
	}
}

func Test_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llgen.toml")
	data := "name = \"Tilde\"\nepsilon = \"~\"\nallow_undefined = true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Tilde", cfg.Name)
	assert.Equal(t, "~", cfg.Epsilon)
	assert.True(t, cfg.AllowUndefined)
	assert.Equal(t, FormatArrow, cfg.Format, "unset keys should keep defaults")
	assert.Equal(t, "->", cfg.Delimiter)

	require.NoError(t, os.WriteFile(path, []byte("start_marker = \"**\"\n"), 0644))
	_, err = LoadConfig(path)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	require.NoError(t, os.WriteFile(path, []byte("format = [\n"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func Test_Load(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()

	dir := t.TempDir()
	path := filepath.Join(dir, "expr.grammar")
	require.NoError(t, os.WriteFile(path, []byte(exprArrows), 0644))

	g, err := Load(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "expr", g.Name)
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, "*Goal", g.Start().Name)
	assert.True(t, g.Rule(3).IsEpsilon())

	ga, err := ll.Analysis(g)
	require.NoError(t, err)
	alt, ok := ga.Table().LookupName("Term", "(")
	assert.True(t, ok)
	assert.Equal(t, 1, alt)
}

func Test_Load_Options(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()

	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("$S -> A ~\n"), 0644))

	_, err := Load(path, DefaultConfig())
	assert.ErrorIs(t, err, ll.ErrMalformedGrammar, "$S is not a non-terminal with the default marker")

	cfg := DefaultConfig()
	cfg.Name = "Dollar"
	cfg.StartMarker = "$"
	cfg.Epsilon = "~"
	_, err = Load(path, cfg)
	assert.ErrorIs(t, err, ll.ErrUnresolvedReference)

	cfg.AllowUndefined = true
	g, err := Load(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Dollar", g.Name)
	assert.Equal(t, []string{"#eof", "A"}, names(g.Terminals()))
	assert.Equal(t, 1, g.Rule(0).Len())
}

func names(syms []*ll.Symbol) []string {
	nn := make([]string, len(syms))
	for i, A := range syms {
		nn[i] = A.Name
	}
	return nn
}
