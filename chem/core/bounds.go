package core

import "fmt"

// Bounds estimates how many elements an Iter still has to produce.
// Lower is always a true lower bound. When the upper bound is known it is a
// true upper bound and never less than Lower.
//
// Bounds are values: every adaptor derives a fresh Bounds from its input
// instead of mutating the one it received.
type Bounds struct {
	lower   int
	upper   int
	bounded bool
}

// Exact returns Bounds for a sequence of exactly n elements.
func Exact(n int) Bounds {
	n = max(n, 0)
	return Bounds{lower: n, upper: n, bounded: true}
}

// Between returns Bounds with both ends known. A reversed pair is normalized
// so that lower <= upper always holds.
func Between(lower, upper int) Bounds {
	lower, upper = max(lower, 0), max(upper, 0)
	if lower > upper {
		lower = upper
	}
	return Bounds{lower: lower, upper: upper, bounded: true}
}

// AtLeast returns Bounds with a known lower end and no upper end.
func AtLeast(lower int) Bounds {
	return Bounds{lower: max(lower, 0)}
}

// Unknown returns Bounds that promise nothing.
func Unknown() Bounds {
	return Bounds{}
}

// Lower returns the lower bound.
func (b Bounds) Lower() int { return b.lower }

// Upper returns the upper bound and whether it is known.
func (b Bounds) Upper() (int, bool) { return b.upper, b.bounded }

// IsExact reports whether both ends are known and equal.
func (b Bounds) IsExact() bool { return b.bounded && b.lower == b.upper }

func (b Bounds) String() string {
	if !b.bounded {
		return fmt.Sprintf("[%d, ∞)", b.lower)
	}
	return fmt.Sprintf("[%d, %d]", b.lower, b.upper)
}

// Skip returns the bounds after discarding k elements from the front.
func (b Bounds) Skip(k int) Bounds {
	out := Bounds{lower: max(0, b.lower-k), bounded: b.bounded}
	if b.bounded {
		out.upper = max(0, b.upper-k)
	}
	return out
}

// StepBy returns the bounds after keeping every s-th element.
func (b Bounds) StepBy(s int) Bounds {
	if s < 1 {
		return b
	}
	out := Bounds{lower: ceilDiv(b.lower, s), bounded: b.bounded}
	if b.bounded {
		out.upper = ceilDiv(b.upper, s)
	}
	return out
}

// Filtered returns the bounds of any adaptor that may drop an arbitrary number
// of elements: nothing is promised below, the upper end is unchanged.
func (b Bounds) Filtered() Bounds {
	return Bounds{upper: b.upper, bounded: b.bounded}
}

// Take returns the bounds after keeping at most n elements.
func (b Bounds) Take(n int) Bounds {
	n = max(n, 0)
	return Bounds{lower: min(b.lower, n), upper: n, bounded: true}
}

// Chain returns the bounds of b followed by o.
func (b Bounds) Chain(o Bounds) Bounds {
	out := Bounds{lower: b.lower + o.lower, bounded: b.bounded && o.bounded}
	if out.bounded {
		out.upper = b.upper + o.upper
	}
	return out
}

// Zip returns the bounds of pairing b with o positionally.
func (b Bounds) Zip(o Bounds) Bounds {
	out := Bounds{lower: min(b.lower, o.lower)}
	switch {
	case b.bounded && o.bounded:
		out.upper, out.bounded = min(b.upper, o.upper), true
	case b.bounded:
		out.upper, out.bounded = b.upper, true
	case o.bounded:
		out.upper, out.bounded = o.upper, true
	}
	if out.bounded && out.lower > out.upper {
		out.lower = out.upper
	}
	return out
}

// Unbounded keeps the lower end and forgets the upper end.
func (b Bounds) Unbounded() Bounds {
	return Bounds{lower: b.lower}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
