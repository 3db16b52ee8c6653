package scanner

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScannerPeekAndNext(t *testing.T) {
	s := New("ab")
	if r, ok := s.Peek(); !ok || r != 'a' {
		t.Errorf("expected peek to return 'a', got %q/%v", r, ok)
	}
	if r, ok := s.PeekSecond(); !ok || r != 'b' {
		t.Errorf("expected second peek to return 'b', got %q/%v", r, ok)
	}
	if s.Pos() != 0 {
		t.Errorf("expected peeking to leave cursor at 0, is %d", s.Pos())
	}
	s.Next()
	if _, ok := s.PeekSecond(); ok {
		t.Error("expected no second character at position 1")
	}
	if r, ok := s.Next(); !ok || r != 'b' {
		t.Errorf("expected next to return 'b', got %q/%v", r, ok)
	}
	if !s.AtEnd() {
		t.Error("expected scanner to be at end")
	}
	if _, ok := s.Next(); ok {
		t.Error("expected next at end of input to fail")
	}
	if s.Pos() != 2 {
		t.Errorf("expected cursor to stay at 2, is %d", s.Pos())
	}
}

func TestScannerCountsRunes(t *testing.T) {
	s := New("äöü!")
	s.ConsumeWhile(unicode.IsLetter)
	if s.Pos() != 3 {
		t.Errorf("expected cursor at rune position 3, is %d", s.Pos())
	}
	if r, _ := s.Peek(); r != '!' {
		t.Errorf("expected '!', got %q", r)
	}
}

func TestConsumeWhileFailingPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.scanner")
	defer teardown()
	//
	for _, input := range []string{"x  ", "", "abc", "ä"} {
		s := New(input)
		got := s.ConsumeWhile(unicode.IsSpace)
		if got != "" {
			t.Errorf("expected empty result for %q, got %q", input, got)
		}
		if s.Pos() != 0 {
			t.Errorf("expected cursor not to move for %q, is at %d", input, s.Pos())
		}
	}
}

func TestConsumeWhileStopsAtEnd(t *testing.T) {
	s := New("aaaa")
	got := s.ConsumeWhile(func(rune) bool { return true })
	if got != "aaaa" || !s.AtEnd() {
		t.Errorf("expected to consume whole input, got %q at end=%v", got, s.AtEnd())
	}
}

func TestConsumeIf(t *testing.T) {
	s := New("<!")
	if s.ConsumeIf('!') {
		t.Error("expected ConsumeIf('!') to fail at '<'")
	}
	if !s.ConsumeIf('<') || !s.ConsumeIf('!') {
		t.Error("expected '<' and '!' to be consumed")
	}
	if s.ConsumeIf('>') {
		t.Error("expected ConsumeIf at end to fail")
	}
}

func TestSkipWhitespaceAndSkipPast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minilayout.scanner")
	defer teardown()
	//
	s := New(" \t\n<tag attr=1>rest")
	s.SkipWhitespace()
	if r, _ := s.Peek(); r != '<' {
		t.Fatalf("expected '<' after whitespace, got %q", r)
	}
	if !s.SkipPast('>') {
		t.Fatal("expected to find '>'")
	}
	if rest := s.ConsumeWhile(func(rune) bool { return true }); rest != "rest" {
		t.Errorf("expected rest of input to be 'rest', is %q", rest)
	}
	if s.SkipPast('>') {
		t.Error("expected SkipPast to fail at end of input")
	}
}
