/*
Package source reads grammars from tabular text files.

Two layouts are supported. The "arrow" format has one production per line,

    *Goal -> Expr
    Expr  -> Term Expr'
    Expr' -> + Term Expr'
    Expr' -> ε

with blank lines and lines starting with "//" ignored. The "tsv" format is
the layout of a spreadsheet exported as tab-separated values: the first
column holds the left-hand side, the remaining columns hold the right-hand
side, either as a single cell or one symbol per cell.

Reading is configured by a Config, which may be decoded from a TOML file:

    name = "Expr"
    format = "arrow"
    delimiter = "->"
    epsilon = "~"
    start_marker = "*"
    allow_undefined = false

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source
