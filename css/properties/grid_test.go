package properties

import (
	"testing"

	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func TestDimensionResolve(t *testing.T) {
	tu.AssertEqual(t, NewDim(10, Px).Resolve(Indefinite), Definite(10))
	tu.AssertEqual(t, NewDim(1, In).Resolve(Indefinite), Definite(96))
	tu.AssertEqual(t, NewDim(50, Perc).Resolve(Indefinite), Indefinite)
	tu.AssertEqual(t, NewDim(50, Perc).Resolve(Definite(30)), Definite(15))
	tu.AssertEqual(t, NewDim(2, Fr).Resolve(Definite(30)), Indefinite)
	tu.AssertEqual(t, Dimension{}.ResolveOrZero(Definite(30)), Fl(0))
	tu.AssertEqual(t, SToV("auto").Resolve(Definite(30)), Indefinite)
}

func TestMaybeFloat(t *testing.T) {
	tu.AssertEqual(t, Definite(3).Min(Definite(2)), Definite(2))
	tu.AssertEqual(t, Definite(3).Min(Indefinite), Definite(3))
	tu.AssertEqual(t, Indefinite.Min(Definite(2)), Indefinite)
	tu.AssertEqual(t, Indefinite.Or(Definite(2)), Definite(2))
	tu.AssertEqual(t, Definite(1).Or(Definite(2)), Definite(1))
	tu.AssertEqual(t, Indefinite.OrZero(), Fl(0))
	tu.AssertEqual(t, Indefinite.String(), "indefinite")
}

func TestTrackSizeSizingFunctions(t *testing.T) {
	px10 := Length(NewDim(10, Px))
	for _, test := range []struct {
		ts       TrackSize
		min, max TrackBreadth
		fixed    bool
		repr     string
	}{
		{Single(px10), px10, px10, true, "10px"},
		{Single(Flex(1)), Auto, Flex(1), false, "1fr"},
		{Minmax(px10, Flex(2.5)), px10, Flex(2.5), true, "minmax(10px, 2.5fr)"},
		{Minmax(MinContent, px10), MinContent, px10, true, "minmax(min-content, 10px)"},
		{FitContent(NewDim(20, Perc)), Auto, FitContentLimit(NewDim(20, Perc)), false, "fit-content(20%)"},
		{Single(MaxContent), MaxContent, MaxContent, false, "max-content"},
	} {
		tu.AssertEqual(t, test.ts.MinSizingFunction(), test.min)
		tu.AssertEqual(t, test.ts.MaxSizingFunction(), test.max)
		tu.AssertEqual(t, test.ts.HasFixedComponent(), test.fixed)
		tu.AssertEqual(t, test.ts.String(), test.repr)
	}
}

func TestTemplateString(t *testing.T) {
	tu.AssertEqual(t, TemplateString(nil), "none")
	template := []TrackSizingFunction{
		Single(Length(NewDim(1, Cm))),
		Repeat(AutoFit, Single(Length(NewDim(10, Px))), Single(Auto)),
	}
	tu.AssertEqual(t, TemplateString(template), "1cm repeat(auto-fit, 10px auto)")
}

func TestStyleAxis(t *testing.T) {
	s := NewStyle()
	s.Padding = [4]Dimension{NewDim(1, Px), NewDim(2, Px), NewDim(3, Px), NewDim(4, Px)}
	s.RowGap, s.ColumnGap = NewDim(5, Px), NewDim(6, Px)
	tu.AssertEqual(t, s.PaddingEdges(Horizontal), [2]Dimension{NewDim(4, Px), NewDim(2, Px)})
	tu.AssertEqual(t, s.PaddingEdges(Vertical), [2]Dimension{NewDim(1, Px), NewDim(3, Px)})
	tu.AssertEqual(t, s.Gap(Horizontal), NewDim(6, Px))
	tu.AssertEqual(t, s.Gap(Vertical), NewDim(5, Px))
	tu.AssertEqual(t, Horizontal.Other(), Vertical)
	tu.AssertEqual(t, s.IsGrid(), false)
}
