package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/llgen/ll"
	"github.com/npillmayer/llgen/ll/source"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llgen",
	Short: "Compute FIRST/FOLLOW sets and the LL(1) parse table of a grammar",
	Long: `llgen analyses context-free grammars given as rows of productions:
- Computes FIRST, FOLLOW and FIRST+ sets of all symbols.
- Builds the LL(1) parse table and reports conflicts.
- Tokenizes sample input to check it against the grammar's terminals.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var rootFlags = struct {
	trace  *string
	config *string
	format *string
}{}

// Trace keys of all packages of this module.
var traceKeys = []string{"llgen.ll", "llgen.scanner", "llgen.report", "llgen.cli"}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "TOML configuration file")
	rootFlags.format = rootCmd.PersistentFlags().StringP("format", "f", "", "grammar file format [arrow|tsv]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", *rootFlags.trace)
	return nil
}

// config returns the configuration given by the command line flags.
func config() (source.Config, error) {
	cfg := source.DefaultConfig()
	if *rootFlags.config != "" {
		var err error
		if cfg, err = source.LoadConfig(*rootFlags.config); err != nil {
			return cfg, err
		}
	}
	if *rootFlags.format != "" {
		cfg.Format = *rootFlags.format
	}
	return cfg, cfg.Validate()
}

// loadAnalysis reads a grammar file and analyses the grammar.
func loadAnalysis(path string) (*ll.LLAnalysis, error) {
	cfg, err := config()
	if err != nil {
		return nil, err
	}
	g, err := source.Load(path, cfg)
	if err != nil {
		return nil, err
	}
	g.Dump()
	return ll.Analysis(g)
}
