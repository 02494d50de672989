package interfaces

// FatalHandler reports unrecoverable API misuse and terminates the
// process. Continuing after misuse would silently corrupt caller
// assumptions, so Fatal never returns.
type FatalHandler interface {
	Fatal(message string)
}
