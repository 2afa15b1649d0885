/*
Package lexmach provides a tokenizer driven by an ordered list of token
classes, built with the lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Every class has a name and a regular expression in lexmachine syntax. The
scanner prefers the longest match; among matches of equal length the class
listed first wins. The type of a token is the index of its class.

	classes := lexmach.DefaultClasses()     // comment, float32, int32, name, …
	ct, err := lexmach.NewClassTokenizer(classes)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := ct.Scanner("int32 var3 = var1 * var2")
	if err != nil {
		// do error handling
	}
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		fmt.Println(token.Class(), scanner.Terminal(token))
	}

ScanAll is a shortcut collecting all the tokens of an input.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
