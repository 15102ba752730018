// Define Custom Function dialog
package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"curve-fitting-studio/internal/expr"
	"curve-fitting-studio/internal/function"
	"curve-fitting-studio/internal/plot"
)

const defaultParameterCount = 3

// FunctionDialog lets the user define a custom fitting function: name,
// expression over named parameters and x, per-parameter initial values, a
// plotted preview, and a validated save. All entered state lives only for
// the dialog's open lifetime.
type FunctionDialog struct {
	parent fyne.Window
	logger *logrus.Logger

	nameEntry   *widget.Entry
	exprEntry   *widget.Entry
	countSlider *widget.Slider
	countLabel  *widget.Label
	table       *ParameterTable

	renderer     *plot.Renderer
	previewImage *canvas.Image

	content *fyne.Container
	popup   dialog.Dialog

	machine formMachine
	saved   *function.Definition
	onSave  func(function.Definition)
}

func NewFunctionDialog(parent fyne.Window, logger *logrus.Logger) *FunctionDialog {
	d := &FunctionDialog{
		parent: parent,
		logger: logger,
	}

	d.initializeUI()
	return d
}

func (d *FunctionDialog) initializeUI() {
	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetPlaceHolder("e.g., My Custom Function")

	d.exprEntry = widget.NewEntry()
	d.exprEntry.SetPlaceHolder("e.g., a*x**b + c*exp(-d*x)")

	d.table = NewParameterTable(d.logger)
	d.table.SetRowCount(defaultParameterCount)

	d.countLabel = widget.NewLabel(strconv.Itoa(defaultParameterCount))
	d.countSlider = widget.NewSlider(function.MinParameters, function.MaxParameters)
	d.countSlider.Step = 1
	d.countSlider.SetValue(defaultParameterCount)
	d.countSlider.OnChanged = func(value float64) {
		count := int(value)
		d.countLabel.SetText(strconv.Itoa(count))
		d.table.SetRowCount(count)
	}

	definitionCard := widget.NewCard("Function Definition", "",
		container.New(layout.NewFormLayout(),
			widget.NewLabel("Function Name:"), d.nameEntry,
			widget.NewLabel("Expression (use x as variable):"), d.exprEntry,
			widget.NewLabel("Number of Parameters:"),
			container.NewBorder(nil, nil, nil, d.countLabel, d.countSlider),
		))

	parameterCard := widget.NewCard("Parameters", "", d.table.GetContainer())

	d.renderer = plot.NewRenderer(520, 240)
	d.previewImage = canvas.NewImageFromImage(d.renderer.Placeholder())
	d.previewImage.FillMode = canvas.ImageFillContain
	d.previewImage.ScaleMode = canvas.ImageScalePixels
	d.previewImage.SetMinSize(fyne.NewSize(480, 220))

	previewButton := widget.NewButton("Preview Function", d.previewFunction)

	previewCard := widget.NewCard("Function Preview", "",
		container.NewVBox(d.previewImage, previewButton))

	saveButton := widget.NewButton("Save Function", d.saveFunction)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", d.cancel)

	d.content = container.NewVBox(
		definitionCard,
		parameterCard,
		previewCard,
		container.NewHBox(layout.NewSpacer(), saveButton, cancelButton),
	)
}

// SetOnSave registers the callback receiving the finished definition.
func (d *FunctionDialog) SetOnSave(onSave func(function.Definition)) {
	d.onSave = onSave
}

// State exposes the form lifecycle state.
func (d *FunctionDialog) State() FormState {
	return d.machine.State()
}

// Definition returns the saved definition once the dialog reached Saved.
func (d *FunctionDialog) Definition() (function.Definition, bool) {
	if d.saved == nil {
		return function.Definition{}, false
	}
	return *d.saved, true
}

// Show opens the dialog modally over the parent window.
func (d *FunctionDialog) Show() {
	d.popup = dialog.NewCustomWithoutButtons("Define Custom Function", container.NewVScroll(d.content), d.parent)
	d.popup.Resize(fyne.NewSize(700, 560))
	d.popup.Show()
}

// previewFunction samples the expression over the fixed preview domain with
// the current parameter values and swaps the rendered curve into the
// preview image. Any failure is reported and the previous plot is kept.
func (d *FunctionDialog) previewFunction() {
	text := strings.TrimSpace(d.exprEntry.Text)
	if text == "" {
		d.reportError(fmt.Errorf("%w: please enter a function expression", function.ErrMissingExpression))
		return
	}

	params, err := d.parameterValues()
	if err != nil {
		d.reportError(err)
		return
	}

	evaluator, err := expr.New(text)
	if err != nil {
		d.reportError(err)
		return
	}

	xs := expr.PreviewDomain()
	ys, err := evaluator.Sample(params, xs)
	if err != nil {
		d.reportError(err)
		return
	}

	// Clear File before swapping Image, as Fyne caches by file path.
	d.previewImage.File = ""
	d.previewImage.Resource = nil
	d.previewImage.Image = d.renderer.Render(xs, ys)
	d.previewImage.Refresh()

	d.logger.WithFields(logrus.Fields{
		"expression": text,
		"points":     len(xs),
	}).Debug("Preview rendered")
}

// saveFunction runs the save gate: validate every field, smoke-test the
// expression at x=1, and on success hand the definition to the caller and
// close. Any failure returns the form to Editing with all input intact.
func (d *FunctionDialog) saveFunction() {
	if err := d.machine.To(StateValidating); err != nil {
		d.logger.WithError(err).Warn("Save requested in invalid state")
		return
	}

	draft := function.Draft{
		Name:       d.nameEntry.Text,
		Expression: d.exprEntry.Text,
		Params:     d.table.Rows(),
	}

	def, err := draft.Finalize(smokeTest)
	if err != nil {
		if terr := d.machine.To(StateEditing); terr != nil {
			d.logger.WithError(terr).Error("Failed to return form to editing")
		}
		d.reportError(err)
		return
	}

	if err := d.machine.To(StateSaved); err != nil {
		d.logger.WithError(err).Error("Failed to finish save")
		return
	}

	d.saved = &def
	d.logger.WithFields(logrus.Fields{
		"name":       def.Name,
		"expression": def.Expression,
		"parameters": len(def.Params),
	}).Info("Custom function saved")

	if d.onSave != nil {
		d.onSave(def)
	}
	if d.popup != nil {
		d.popup.Hide()
	}
}

// cancel discards all entered data with no validation.
func (d *FunctionDialog) cancel() {
	if err := d.machine.To(StateRejected); err != nil {
		d.logger.WithError(err).Warn("Cancel requested in invalid state")
		return
	}

	d.logger.Debug("Custom function dialog cancelled")
	if d.popup != nil {
		d.popup.Hide()
	}
}

// parameterValues parses the current table rows into a name -> value
// binding for evaluation.
func (d *FunctionDialog) parameterValues() (map[string]float64, error) {
	rows := d.table.Rows()
	values := make(map[string]float64, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: parameter %d needs a name", function.ErrMissingParameterName, i+1)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid initial value for parameter %s", function.ErrInvalidParameterValue, name)
		}
		values[name] = value
	}
	return values, nil
}

func (d *FunctionDialog) reportError(err error) {
	d.logger.WithError(err).Warn("Custom function dialog error")
	dialog.ShowError(err, d.parent)
}

// smokeTest confirms the assembled definition evaluates at a representative
// scalar x before the save is accepted.
func smokeTest(def function.Definition) error {
	evaluator, err := expr.New(def.Expression)
	if err != nil {
		return err
	}
	_, err = evaluator.Eval(def.ParamValues(), 1.0)
	return err
}
