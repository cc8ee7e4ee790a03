package layout

import (
	pr "github.com/benoitkugler/gridtracks/css/properties"
)

// Resolve percentages into fixed values.

// resolveOuterSize returns the border box size of the container in [axis],
// when it is known before layout : the preferred size clamped by the
// maximum size, or the maximum size, or the minimum size.
//
// [isMaximum] is true when the size is an upper bound, that is when
// a preferred or maximum size is definite.
func resolveOuterSize(style GridStyle, axis pr.Axis) (outer pr.MaybeFloat, isMaximum bool) {
	// the container block size is unknown
	size := style.Size(axis).Resolve(pr.Indefinite)
	minSize := style.MinSize(axis).Resolve(pr.Indefinite)
	maxSize := style.MaxSize(axis).Resolve(pr.Indefinite)

	outer = size.Min(maxSize).Or(maxSize).Or(minSize)
	return outer, size.Definite || maxSize.Definite
}

// resolveInnerSize removes the padding and border widths from [outer],
// resolving their percentages against [outer].
func resolveInnerSize(style GridStyle, axis pr.Axis, outer pr.Fl) pr.Fl {
	referTo := pr.Definite(outer)
	inner := outer
	for _, edge := range style.PaddingEdges(axis) {
		inner -= edge.ResolveOrZero(referTo)
	}
	for _, edge := range style.BorderEdges(axis) {
		inner -= edge.ResolveOrZero(referTo)
	}
	return inner
}
