package ll

import "errors"

// Errors reported while constructing or analysing a grammar. They are wrapped
// with context; test for them with errors.Is.
var (
	// ErrMalformedGrammar signals a production which fails basic structural
	// expectations, e.g. an empty left-hand side.
	ErrMalformedGrammar = errors.New("malformed grammar")

	// ErrMissingStartSymbol signals that no left-hand side carries the start marker.
	ErrMissingStartSymbol = errors.New("missing start symbol")

	// ErrUnresolvedReference signals a non-terminal on a right-hand side which
	// has no productions of its own.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
