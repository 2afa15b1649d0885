package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'llgen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.cli")
}

// main() starts llgen, a tool to inspect LL(1) grammars. Grammars are read
// from tabular text files, one production per row. llgen prints FIRST,
// FOLLOW and FIRST+ sets and the LL(1) parse table, tokenizes sample input
// and offers an interactive mode to query the analysis.
func main() {
	initDisplay()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
