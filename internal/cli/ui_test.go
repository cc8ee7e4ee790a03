package cli

import (
	"bytes"
	"strings"
	"testing"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/html/layout"
	tu "github.com/benoitkugler/gridtracks/utils/testutils"
)

func TestTrackRows(t *testing.T) {
	var at layout.AxisTracks
	style := pr.NewStyle()
	style.GridTemplateColumns = []pr.TrackSizingFunction{pr.Single(pr.Flex(1))}
	style.ColumnGap = pr.NewDim(4, pr.Px)
	at.Update(&style, 1, layout.Placement{NegativeImplicit: 1})

	tu.AssertEqual(t, trackRows(at), [][]string{
		{"0", "", "gutter", "", "0px", "0px", "yes"},
		{"1", "0", "track", "negative implicit", "auto", "auto", ""},
		{"2", "", "gutter", "", "4px", "4px", ""},
		{"3", "1", "track", "explicit", "auto", "1fr", ""},
		{"4", "", "gutter", "", "0px", "0px", "yes"},
	})

	var buf bytes.Buffer
	out := newPalette(&buf).renderTracks(at)
	for _, header := range trackHeaders {
		if !strings.Contains(out, header) {
			t.Fatalf("missing header %s in\n%s", header, out)
		}
	}
}
