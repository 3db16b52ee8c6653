/*
Package maybe provides an option type.

Trees of this module carry optional values in a couple of places: an element
may or may not have inline text, a style node may or may not have matching
declarations, and lookup tables may or may not know a keyword. Maybe makes
the absence explicit in the type.

Values are inspected either by pattern matching

    var text string
    switch m := el.Text().Match(); m {
    case m.Just(&text):
        …
    case m.Nothing():
        …
    }

or by the more conventional Get(), which returns a comma-ok pair.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value of type T or Nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOK creates a Maybe from a comma-ok pair.
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// WithDefault unwraps the value or returns def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value. Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher to be used in a switch statement.
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Matcher is a helper for pattern matching a Maybe. Each arm returns the
// matcher itself if it matches and nil otherwise.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches a wrapped value and stores it in v (if v is non-nil).
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches an empty Maybe.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
