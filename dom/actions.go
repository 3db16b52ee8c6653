package dom

// Predicate is a test on elements, to be used with Find.
type Predicate func(el *Element) bool

// IsOfType is a predicate to match elements of a given type.
func IsOfType(t ElementType) Predicate {
	return func(el *Element) bool {
		return el.Type() == t
	}
}

// HasText is a predicate to match elements carrying inline text.
var HasText Predicate = func(el *Element) bool {
	return !el.Text().IsNothing()
}

// Walk visits el and all its descendents top-down, depth first, in document
// order. If visit returns false, the children of the element are skipped.
func Walk(el *Element, visit func(el *Element, depth int) bool) {
	walk(el, 0, visit)
}

func walk(el *Element, depth int, visit func(*Element, int) bool) {
	if el == nil {
		return
	}
	if !visit(el, depth) {
		return
	}
	for _, ch := range el.children {
		walk(ch, depth+1, visit)
	}
}

// Find returns all elements of the tree below (and including) el which
// match a predicate, in document order.
func Find(el *Element, pred Predicate) []*Element {
	var found []*Element
	Walk(el, func(e *Element, _ int) bool {
		if pred(e) {
			found = append(found, e)
		}
		return true
	})
	tracer().Debugf("find: %d elements matched", len(found))
	return found
}

// Count returns the number of elements of the tree rooted at el.
func Count(el *Element) int {
	n := 0
	Walk(el, func(*Element, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the nesting depth of the tree rooted at el, with a single
// element having depth 1.
func Depth(el *Element) int {
	max := 0
	Walk(el, func(_ *Element, d int) bool {
		if d+1 > max {
			max = d + 1
		}
		return true
	})
	return max
}
