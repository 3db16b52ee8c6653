package maybe_test

import (
	"testing"

	. "github.com/npillmayer/minilayout/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("Aliens?")
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Error("expected Just, got Nothing")
	}
	if v != "Aliens?" {
		t.Errorf("expected v to be 'Aliens?', is %q", v)
	}

	var w string
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing, got Just(%q)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var z Maybe[int]
	if !z.IsNothing() {
		t.Error("expected zero value to be Nothing")
	}
	if z.String() != "Nothing" {
		t.Errorf("expected 'Nothing', got %q", z.String())
	}
}

func TestMaybeGetAndDefault(t *testing.T) {
	if v, ok := Just(7).Get(); !ok || v != 7 {
		t.Errorf("expected (7, true), got (%d, %v)", v, ok)
	}
	if _, ok := Nothing[int]().Get(); ok {
		t.Error("expected Nothing.Get() to report false")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100")
	}
	if FromOK(3, false).IsNothing() != true || FromOK(3, true).WithDefault(0) != 3 {
		t.Error("expected FromOK to respect the ok flag")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v := Just(7).Map(double).WithDefault(0); v != 14 {
		t.Errorf("expected Just(7).Map(double) to be 14, is %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(positive, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(positive) to be true")
	}
	if !AndThen(positive, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(positive) to be Nothing")
	}
}
