package layout

import (
	"testing"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func TestResolveOuterSize(t *testing.T) {
	for _, test := range []struct {
		size, minSize, maxSize pr.DimOrS
		outer                  pr.MaybeFloat
		isMaximum              bool
	}{
		{pr.SToV("auto"), pr.SToV("auto"), pr.SToV("none"), pr.Indefinite, false},
		{px(100).ToValue(), pr.SToV("auto"), pr.SToV("none"), pr.Definite(100), true},
		{px(100).ToValue(), pr.SToV("auto"), px(80).ToValue(), pr.Definite(80), true},
		{pr.SToV("auto"), pr.SToV("auto"), px(80).ToValue(), pr.Definite(80), true},
		{pr.SToV("auto"), px(60).ToValue(), pr.SToV("none"), pr.Definite(60), false},
		// the minimum is only used without preferred and maximum sizes
		{px(50).ToValue(), px(60).ToValue(), pr.SToV("none"), pr.Definite(50), true},
		// percentages need the container block size
		{percent(50).ToValue(), pr.SToV("auto"), pr.SToV("none"), pr.Indefinite, false},
	} {
		style := newGridStyle()
		style.Width, style.MinWidth, style.MaxWidth = test.size, test.minSize, test.maxSize
		outer, isMaximum := resolveOuterSize(style, pr.Horizontal)
		tu.AssertEqual(t, outer, test.outer)
		tu.AssertEqual(t, isMaximum, test.isMaximum)
	}
}

func TestResolveInnerSize(t *testing.T) {
	style := newGridStyle()
	style.Padding = [4]pr.Dimension{px(1), percent(10), px(2), px(5)}
	style.BorderWidth = [4]pr.Dimension{px(3), px(2), px(4), px(3)}
	tu.AssertEqual(t, resolveInnerSize(style, pr.Horizontal, 200), pr.Fl(200-20-5-2-3))
	tu.AssertEqual(t, resolveInnerSize(style, pr.Vertical, 200), pr.Fl(200-1-2-3-4))
}
