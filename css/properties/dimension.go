package properties

import (
	"fmt"

	"github.com/benoitkugler/gridtracks/utils"
)

type Fl = utils.Fl

type Unit uint8

const ( // zero field corresponds to null content
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
	Fr // only found in track sizing functions
)

// How many CSS pixels is one <unit>?
// http://www.w3.org/TR/CSS21/syndata.html#length-units
var LengthsToPixels = map[Unit]Fl{
	Px: 1,
	Pt: 1. / 0.75,
	Pc: 16.,             // LengthsToPixels["pt"] * 12
	In: 96.,             // LengthsToPixels["pt"] * 72
	Cm: 96. / 2.54,      // LengthsToPixels["in"] / 2.54
	Mm: 96. / 25.4,      // LengthsToPixels["in"] / 25.4
	Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
}

// UnitFromString returns 0 for unknown units.
func UnitFromString(s string) Unit {
	switch s {
	case "%":
		return Perc
	case "px":
		return Px
	case "pt":
		return Pt
	case "pc":
		return Pc
	case "in":
		return In
	case "cm":
		return Cm
	case "mm":
		return Mm
	case "q":
		return Q
	case "fr":
		return Fr
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Scalar:
		return ""
	case Perc:
		return "%"
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	case Fr:
		return "fr"
	default:
		return "<invalid unit>"
	}
}

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Fl
	Unit  Unit
}

func NewDim(v Fl, u Unit) Dimension { return Dimension{v, u} }

// IsNone returns true for the zero value, which is not a valid length.
func (d Dimension) IsNone() bool { return d.Unit == 0 }

func (d Dimension) String() string {
	return fmt.Sprintf("%s%s", utils.FormatFl(d.Value), d.Unit)
}

// ToValue wraps the dimension into a [DimOrS].
func (d Dimension) ToValue() DimOrS { return DimOrS{Dimension: d} }

// Resolve converts the dimension to pixels. Percentages are resolved against
// [parent] and are indefinite when [parent] is.
// Non length units (fr, scalar) are indefinite.
func (d Dimension) Resolve(parent MaybeFloat) MaybeFloat {
	switch d.Unit {
	case Perc:
		if !parent.Definite {
			return Indefinite
		}
		return Definite(d.Value * parent.Value / 100)
	case Scalar, Fr, 0:
		return Indefinite
	default:
		return Definite(d.Value * LengthsToPixels[d.Unit])
	}
}

// ResolveOrZero is like [Resolve], but returns 0 for indefinite values.
func (d Dimension) ResolveOrZero(parent MaybeFloat) Fl {
	return d.Resolve(parent).OrZero()
}

// DimOrS is either a dimension or a keyword, like "auto"
// or "none".
type DimOrS struct {
	S string
	Dimension
}

// SToV returns the keyword [s].
func SToV(s string) DimOrS { return DimOrS{S: s} }

func (ds DimOrS) IsNone() bool { return ds.S == "" && ds.Dimension.IsNone() }

func (ds DimOrS) String() string {
	if ds.S != "" {
		return ds.S
	}
	return ds.Dimension.String()
}

// Resolve returns [Indefinite] for keywords.
func (ds DimOrS) Resolve(parent MaybeFloat) MaybeFloat {
	if ds.S != "" {
		return Indefinite
	}
	return ds.Dimension.Resolve(parent)
}

// MaybeFloat is a length which may be indefinite,
// like the size of an auto sized container.
type MaybeFloat struct {
	Value    Fl
	Definite bool
}

// Indefinite is the zero [MaybeFloat].
var Indefinite MaybeFloat

func Definite(v Fl) MaybeFloat { return MaybeFloat{Value: v, Definite: true} }

// Min returns the minimum of the two values, ignoring [other]
// if it is indefinite.
func (m MaybeFloat) Min(other MaybeFloat) MaybeFloat {
	if m.Definite && other.Definite {
		return Definite(utils.MinF(m.Value, other.Value))
	}
	return m
}

// Or returns [m] if it is definite, [other] otherwise.
func (m MaybeFloat) Or(other MaybeFloat) MaybeFloat {
	if m.Definite {
		return m
	}
	return other
}

func (m MaybeFloat) OrZero() Fl {
	if m.Definite {
		return m.Value
	}
	return 0
}

func (m MaybeFloat) String() string {
	if !m.Definite {
		return "indefinite"
	}
	return utils.FormatFl(m.Value)
}
