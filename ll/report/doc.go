/*
Package report renders the results of an LL(1) analysis for humans.

Text output uses pterm table printers. Parse tables have a row per
non-terminal and a column per terminal, end of input first; absent cells
are shown as "-". Cells either hold the index of an alternative of the
row's non-terminal (Local numbering) or the number of the rule within the
whole grammar (Global numbering), as listed by WriteRules.

TableAsHTML exports a parse table as a plain HTML page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.report'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.report")
}
