package ast

import (
	"fmt"
)

// Position is a line and column in the original source file. Lines start at 1,
// the zero Position means the location is unknown.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Positioner allows finding the location in the original source file.
type Positioner interface {
	Pos() Position // position of first character belonging to the node
	End() Position // position of first character immediately after the node
}

// Range represents a range of positions in the source code.
type Range struct {
	PosStart Position
	PosEnd   Position
}

// Pos returns the starting position of the range.
func (r Range) Pos() Position { return r.PosStart }

// End returns the ending position of the range.
func (r Range) End() Position { return r.PosEnd }

// String returns a string representation of the range.
func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return r.PosStart.String()
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// AtLine is a shorthand for a Range covering the start of line.
func AtLine(line int) Range {
	p := Position{Line: line, Column: 1}
	return Range{PosStart: p, PosEnd: p}
}

// RangeBetween creates a Range between two Positioners.
func RangeBetween(fst, snd Positioner) Range {
	return Range{fst.Pos(), snd.End()}
}

// RangeOf creates a Range from a Positioner.
func RangeOf(expr Positioner) Range {
	if expr == nil {
		return Range{}
	}
	if asRange, ok := expr.(*Range); ok {
		return *asRange
	}
	if asRange, ok := expr.(Range); ok {
		return asRange
	}
	return Range{expr.Pos(), expr.End()}
}
