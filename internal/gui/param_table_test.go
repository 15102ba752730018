package gui

import (
	"fmt"
	"io"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sirupsen/logrus"

	"curve-fitting-studio/internal/function"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestParameterTableDefaults(t *testing.T) {
	test.NewApp()
	table := NewParameterTable(quietLogger())
	table.SetRowCount(3)

	rows := table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	for i, wantName := range []string{"a", "b", "c"} {
		if rows[i].Name != wantName {
			t.Errorf("row %d name = %q, want %q", i, rows[i].Name, wantName)
		}
		if rows[i].Value != "1.0" {
			t.Errorf("row %d value = %q, want \"1.0\"", i, rows[i].Value)
		}
		if want := fmt.Sprintf("Parameter %s", wantName); rows[i].Description != want {
			t.Errorf("row %d description = %q, want %q", i, rows[i].Description, want)
		}
	}
}

func TestParameterTableGrowPreservesEdits(t *testing.T) {
	test.NewApp()
	table := NewParameterTable(quietLogger())
	table.SetRowCount(2)

	table.rows[0].name.SetText("amplitude")
	table.rows[0].value.SetText("2.5")
	table.rows[1].desc.SetText("decay rate")

	table.SetRowCount(5)

	rows := table.Rows()
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0].Name != "amplitude" || rows[0].Value != "2.5" {
		t.Errorf("row 0 edits lost: %+v", rows[0])
	}
	if rows[1].Description != "decay rate" {
		t.Errorf("row 1 edit lost: %+v", rows[1])
	}
	for i := 2; i < 5; i++ {
		if rows[i].Name != function.DefaultParameterName(i) {
			t.Errorf("row %d name = %q, want default %q", i, rows[i].Name, function.DefaultParameterName(i))
		}
	}
}

func TestParameterTableShrinkDropsTail(t *testing.T) {
	test.NewApp()
	table := NewParameterTable(quietLogger())
	table.SetRowCount(6)
	table.rows[1].value.SetText("42")

	table.SetRowCount(2)

	rows := table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Value != "42" {
		t.Errorf("surviving row edit lost: %+v", rows[1])
	}
}

func TestParameterTableClampsCount(t *testing.T) {
	test.NewApp()
	table := NewParameterTable(quietLogger())

	table.SetRowCount(0)
	if table.Count() != function.MinParameters {
		t.Errorf("Count = %d, want clamp to %d", table.Count(), function.MinParameters)
	}

	table.SetRowCount(25)
	if table.Count() != function.MaxParameters {
		t.Errorf("Count = %d, want clamp to %d", table.Count(), function.MaxParameters)
	}
}

// Property: for any resize sequence within [1,10], rows that survive keep
// their edited values and only new rows receive defaults.
func TestParameterTableResizeProperty(t *testing.T) {
	test.NewApp()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("surviving rows keep edits across resize", prop.ForAll(
		func(oldCount, newCount int) bool {
			table := NewParameterTable(quietLogger())
			table.SetRowCount(oldCount)

			for i := 0; i < oldCount; i++ {
				table.rows[i].value.SetText(fmt.Sprintf("edited-%d", i))
			}

			table.SetRowCount(newCount)

			if table.Count() != newCount {
				return false
			}

			survivors := oldCount
			if newCount < survivors {
				survivors = newCount
			}
			rows := table.Rows()
			for i := 0; i < survivors; i++ {
				if rows[i].Value != fmt.Sprintf("edited-%d", i) {
					return false
				}
			}
			for i := survivors; i < newCount; i++ {
				if rows[i].Name != function.DefaultParameterName(i) || rows[i].Value != "1.0" {
					return false
				}
			}
			return true
		},
		gen.IntRange(function.MinParameters, function.MaxParameters),
		gen.IntRange(function.MinParameters, function.MaxParameters),
	))

	properties.Property("default names follow the letter scheme", prop.ForAll(
		func(count int) bool {
			table := NewParameterTable(quietLogger())
			table.SetRowCount(count)

			for i, row := range table.Rows() {
				if row.Name != function.DefaultParameterName(i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(function.MinParameters, function.MaxParameters),
	))

	properties.TestingRun(t)
}
