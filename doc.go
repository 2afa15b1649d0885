/*
Package llgen is a toolbox for constructing LL(1) parsing tables.

It computes FIRST, FOLLOW and FIRST+ sets for a context-free grammar and
derives the table a predictive parser is driven by. Package structure is
as follows:

■ ll: Package ll holds the grammar model, the set solvers and the table builder.

■ ll/source: Package source reads tabular grammar descriptions and configuration.

■ ll/scanner: Package scanner defines tokenizers, with a lexmachine-backed
class tokenizer in sub-package lexmach.

■ ll/report: Package report renders tables and sets for humans.

■ cmd/llgen: A command line tool on top of all of these, with an interactive mode.

The base package contains data types which are shared by the scanners.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llgen
