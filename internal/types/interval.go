package types

import (
	"fmt"

	"github.com/alexandermeade/jason-rs/internal/value"
)

// Interval is a numeric range type built from <, <=, >, >= and possibly
// tightened by `while`. A nil Min or Max
// means that side is unbounded.
type Interval struct {
	Min, Max                 *float64
	MinIncluded, MaxIncluded bool
}

// GreaterThan builds the half-unbounded interval (n, +inf).
func GreaterThan(n float64) Interval { return Interval{Min: &n, MinIncluded: false} }

// GreaterOrEqual builds the half-unbounded interval [n, +inf).
func GreaterOrEqual(n float64) Interval { return Interval{Min: &n, MinIncluded: true} }

// LessThan builds the half-unbounded interval (-inf, n).
func LessThan(n float64) Interval { return Interval{Max: &n, MaxIncluded: false} }

// LessOrEqual builds the half-unbounded interval (-inf, n].
func LessOrEqual(n float64) Interval { return Interval{Max: &n, MaxIncluded: true} }

func (iv Interval) Matches(v *value.Value) bool {
	if !v.IsNumeric() {
		return false
	}
	return iv.Contains(v.FloatValue())
}

// Contains reports whether x lies within the interval, honouring
// inclusivity at each bound.
func (iv Interval) Contains(x float64) bool {
	if iv.Min != nil {
		if x < *iv.Min || (x == *iv.Min && !iv.MinIncluded) {
			return false
		}
	}
	if iv.Max != nil {
		if x > *iv.Max || (x == *iv.Max && !iv.MaxIncluded) {
			return false
		}
	}
	return true
}

func (iv Interval) String() string {
	lo := "-inf"
	loBrace := "("
	if iv.Min != nil {
		lo = fmt.Sprintf("%g", *iv.Min)
		if iv.MinIncluded {
			loBrace = "["
		}
	}
	hi := "+inf"
	hiBrace := ")"
	if iv.Max != nil {
		hi = fmt.Sprintf("%g", *iv.Max)
		if iv.MaxIncluded {
			hiBrace = "]"
		}
	}
	return loBrace + lo + ", " + hi + hiBrace
}

// Intersect computes the interval with the larger min and the smaller max,
// resolving inclusivity correctly at coincident bounds. It errors if the
// resulting interval is empty.
func Intersect(a, b Interval) (Interval, error) {
	min, minIncl := combineLower(a.Min, a.MinIncluded, b.Min, b.MinIncluded)
	max, maxIncl := combineUpper(a.Max, a.MaxIncluded, b.Max, b.MaxIncluded)

	if min != nil && max != nil {
		if *min > *max || (*min == *max && !(minIncl && maxIncl)) {
			return Interval{}, fmt.Errorf("empty interval intersection: %s while %s", a, b)
		}
	}
	return Interval{Min: min, MinIncluded: minIncl, Max: max, MaxIncluded: maxIncl}, nil
}

func combineLower(aMin *float64, aIncl bool, bMin *float64, bIncl bool) (*float64, bool) {
	switch {
	case aMin == nil:
		return bMin, bIncl
	case bMin == nil:
		return aMin, aIncl
	case *aMin > *bMin:
		return aMin, aIncl
	case *bMin > *aMin:
		return bMin, bIncl
	default:
		v := *aMin
		return &v, aIncl && bIncl
	}
}

func combineUpper(aMax *float64, aIncl bool, bMax *float64, bIncl bool) (*float64, bool) {
	switch {
	case aMax == nil:
		return bMax, bIncl
	case bMax == nil:
		return aMax, aIncl
	case *aMax < *bMax:
		return aMax, aIncl
	case *bMax < *aMax:
		return bMax, bIncl
	default:
		v := *aMax
		return &v, aIncl && bIncl
	}
}
