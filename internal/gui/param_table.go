// Editable parameter table backed by an ordered row model
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"curve-fitting-studio/internal/function"
)

// ParameterTable edits the ordered parameter rows of a function draft. The
// row slice is the source of truth; the 3-column entry grid is rebuilt from
// it whenever the row count changes, so user edits survive resizes.
type ParameterTable struct {
	logger *logrus.Logger

	grid *fyne.Container
	rows []*parameterRow
}

type parameterRow struct {
	name  *widget.Entry
	value *widget.Entry
	desc  *widget.Entry
}

func newParameterRow(index int) *parameterRow {
	defaultName := function.DefaultParameterName(index)

	row := &parameterRow{
		name:  widget.NewEntry(),
		value: widget.NewEntry(),
		desc:  widget.NewEntry(),
	}
	row.name.SetText(defaultName)
	row.value.SetText("1.0")
	row.desc.SetText(fmt.Sprintf("Parameter %s", defaultName))
	return row
}

func NewParameterTable(logger *logrus.Logger) *ParameterTable {
	table := &ParameterTable{logger: logger}
	table.grid = container.NewGridWithColumns(3)
	table.rebuild()
	return table
}

func (pt *ParameterTable) GetContainer() fyne.CanvasObject {
	return pt.grid
}

// SetRowCount resizes the table to exactly count rows, clamped to the
// parameter bounds. Surviving rows keep whatever the user typed; new rows
// get default name, value "1.0" and description.
func (pt *ParameterTable) SetRowCount(count int) {
	if count < function.MinParameters {
		count = function.MinParameters
	}
	if count > function.MaxParameters {
		count = function.MaxParameters
	}

	switch {
	case count < len(pt.rows):
		pt.rows = pt.rows[:count]
	case count > len(pt.rows):
		for i := len(pt.rows); i < count; i++ {
			pt.rows = append(pt.rows, newParameterRow(i))
		}
	default:
		return
	}

	pt.rebuild()
	pt.logger.WithField("rows", count).Debug("Parameter table resized")
}

// Count returns the current number of parameter rows.
func (pt *ParameterTable) Count() int {
	return len(pt.rows)
}

// Rows snapshots the current text of every row in order.
func (pt *ParameterTable) Rows() []function.DraftParameter {
	params := make([]function.DraftParameter, len(pt.rows))
	for i, row := range pt.rows {
		params[i] = function.DraftParameter{
			Name:        row.name.Text,
			Value:       row.value.Text,
			Description: row.desc.Text,
		}
	}
	return params
}

// rebuild projects the row model into the grid.
func (pt *ParameterTable) rebuild() {
	pt.grid.RemoveAll()

	pt.grid.Add(widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	pt.grid.Add(widget.NewLabelWithStyle("Initial Value", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	pt.grid.Add(widget.NewLabelWithStyle("Description", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	for _, row := range pt.rows {
		pt.grid.Add(row.name)
		pt.grid.Add(row.value)
		pt.grid.Add(row.desc)
	}

	pt.grid.Refresh()
}
