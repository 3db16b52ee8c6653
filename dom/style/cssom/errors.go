package cssom

import "fmt"

// DeclarationError describes a declaration which has been dropped.
// Pos is the position of the end of the declaration, counted in
// characters.
type DeclarationError struct {
	Pos      int
	Property string
	Value    string
	Reason   string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("css: declaration %q: %q dropped at position %d: %s",
		e.Property, e.Value, e.Pos, e.Reason)
}

// SelectorError describes a rule which has been skipped because of an
// unknown selector.
type SelectorError struct {
	Pos      int
	Selector string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("css: unknown selector %q at position %d, rule skipped",
		e.Selector, e.Pos)
}
