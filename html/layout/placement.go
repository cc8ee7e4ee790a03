package layout

import "github.com/benoitkugler/gridtracks/utils"

// AutoPlace places [items] single cell items one after the other,
// filling each row before starting the next one, and returns the
// resulting placement for both axis.
//
// When there is no explicit column, one implicit column is created.
// Rows are added after the explicit ones as needed.
// No item is placed before the explicit grid.
func AutoPlace(items, explicitColumns, explicitRows int) (columns, rows Placement) {
	width := explicitColumns
	if width == 0 && items > 0 {
		width = 1
		columns.PositiveImplicit = 1
	}
	usedColumns, usedRows := 0, 0
	if items > 0 {
		usedColumns = utils.MinInt(items, width)
		usedRows = (items + width - 1) / width
	}
	rows.PositiveImplicit = utils.MaxInt(0, usedRows-explicitRows)
	columns.HasItems = func(trackIndex int) bool { return trackIndex < usedColumns }
	rows.HasItems = func(trackIndex int) bool { return trackIndex < usedRows }
	return columns, rows
}
