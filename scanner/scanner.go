package scanner

import (
	"fmt"
	"unicode"
)

// Scanner is a cursor over an immutable text buffer. The zero value is an
// empty scanner which is always at its end.
type Scanner struct {
	input  []rune
	cursor int // position in runes
}

// New creates a scanner for a text, positioned at the first character.
func New(text string) *Scanner {
	return &Scanner{input: []rune(text)}
}

func (s *Scanner) String() string {
	return fmt.Sprintf("(Scanner @%d/%d)", s.cursor, len(s.input))
}

// Pos returns the position of the cursor, counted in runes.
func (s *Scanner) Pos() int {
	return s.cursor
}

// Len returns the length of the input, counted in runes.
func (s *Scanner) Len() int {
	return len(s.input)
}

// AtEnd is true when all of the input has been consumed.
func (s *Scanner) AtEnd() bool {
	return s.cursor >= len(s.input)
}

// Peek returns the character at the cursor without advancing.
func (s *Scanner) Peek() (rune, bool) {
	return s.at(s.cursor)
}

// PeekSecond returns the character one past the cursor without advancing.
// Units like "px" and "em" need this second character of lookahead.
func (s *Scanner) PeekSecond() (rune, bool) {
	return s.at(s.cursor + 1)
}

func (s *Scanner) at(i int) (rune, bool) {
	if i < 0 || i >= len(s.input) {
		return 0, false
	}
	return s.input[i], true
}

// Next consumes the character at the cursor and returns it.
// At the end of input it returns false and leaves the cursor untouched.
func (s *Scanner) Next() (rune, bool) {
	r, ok := s.Peek()
	if ok {
		s.cursor++
	}
	return r, ok
}

// ConsumeWhile advances as long as pred holds for the next character and
// returns the consumed characters. If pred fails for the first character,
// the empty string is returned and the cursor does not move.
func (s *Scanner) ConsumeWhile(pred func(rune) bool) string {
	start := s.cursor
	for s.cursor < len(s.input) && pred(s.input[s.cursor]) {
		s.cursor++
	}
	return string(s.input[start:s.cursor])
}

// SkipWhitespace consumes all whitespace at the cursor.
func (s *Scanner) SkipWhitespace() {
	s.ConsumeWhile(unicode.IsSpace)
}

// ConsumeIf advances by one character if the next character equals expected.
func (s *Scanner) ConsumeIf(expected rune) bool {
	if r, ok := s.Peek(); ok && r == expected {
		s.cursor++
		return true
	}
	return false
}

// SkipPast consumes everything up to and including the next occurence of
// delim. It returns false if the input ended before delim showed up.
func (s *Scanner) SkipPast(delim rune) bool {
	s.ConsumeWhile(func(r rune) bool { return r != delim })
	if !s.ConsumeIf(delim) {
		tracer().Debugf("end of input while looking for %q", delim)
		return false
	}
	return true
}
