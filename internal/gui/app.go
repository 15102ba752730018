// Main application window hosting the function catalog
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"curve-fitting-studio/internal/function"
)

// Application is the main window: it owns the in-memory function catalog,
// lists the available models, and opens the Define Custom Function dialog.
type Application struct {
	app       fyne.App
	window    fyne.Window
	logger    *logrus.Logger
	debugMode bool

	catalog *function.Catalog

	functionList *widget.List
	defineButton *widget.Button
	statusCard   *widget.Card
	content      *fyne.Container
}

func NewApplication(app fyne.App, logger *logrus.Logger, debugMode bool) *Application {
	window := app.NewWindow("Curve Fitting Studio")
	window.Resize(fyne.NewSize(900, 600))
	window.CenterOnScreen()

	appInstance := &Application{
		app:       app,
		window:    window,
		logger:    logger,
		debugMode: debugMode,
		catalog:   function.NewCatalog(),
	}

	appInstance.seedCatalog()
	appInstance.initializeGUI()
	appInstance.setupLayout()

	return appInstance
}

func (a *Application) seedCatalog() {
	for _, def := range function.Builtins() {
		if err := a.catalog.Add(def); err != nil {
			a.logger.WithError(err).Error("Failed to register built-in function")
		}
	}
	a.logger.WithField("functions", a.catalog.Len()).Debug("Catalog seeded with built-in models")
}

func (a *Application) initializeGUI() {
	a.functionList = widget.NewList(
		func() int { return a.catalog.Len() },
		func() fyne.CanvasObject {
			return widget.NewLabel("function")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			names := a.catalog.Names()
			if id < 0 || id >= len(names) {
				return
			}
			def, _ := a.catalog.Get(names[id])
			obj.(*widget.Label).SetText(fmt.Sprintf("%s:  y = %s", def.Name, def.Expression))
		},
	)

	a.defineButton = widget.NewButton("Define Custom Function...", a.showFunctionDialog)
	a.defineButton.Importance = widget.HighImportance

	a.statusCard = widget.NewCard("Status", "",
		widget.NewLabel("Select a model or define a custom function"))
}

func (a *Application) setupLayout() {
	listCard := widget.NewCard("Fitting Functions", "", a.functionList)

	a.content = container.NewBorder(
		nil,                               // top
		container.NewVBox(a.defineButton), // bottom
		nil,                               // left
		a.statusCard,                      // right
		listCard,                          // center
	)

	a.window.SetContent(a.content)
}

func (a *Application) showFunctionDialog() {
	dlg := NewFunctionDialog(a.window, a.logger)
	dlg.SetOnSave(func(def function.Definition) {
		if err := a.catalog.Add(def); err != nil {
			a.showError("Save Function", err)
			return
		}
		a.functionList.Refresh()
		a.updateStatusMessage(fmt.Sprintf("Saved custom function %q", def.Name))
	})
	dlg.Show()
}

func (a *Application) updateStatusMessage(message string) {
	if a.statusCard != nil {
		a.statusCard.SetContent(widget.NewLabel(message))
	}
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
	a.updateStatusMessage(fmt.Sprintf("Error: %s", err.Error()))
}

// Catalog exposes the registry backing the window, for the caller side of
// the save flow.
func (a *Application) Catalog() *function.Catalog {
	return a.catalog
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Main window closed")
		a.app.Quit()
	})

	a.window.ShowAndRun()
}
