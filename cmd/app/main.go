package main

import (
	"flag"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"curve-fitting-studio/internal/gui"
)

const (
	AppName    = "Curve Fitting Studio"
	AppID      = "com.curvefitting.studio"
	AppVersion = "1.0.0"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)
	logger.WithField("version", AppVersion).Info("Starting " + AppName)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	mainApp := gui.NewApplication(myApp, logger, *debugMode)
	mainApp.ShowAndRun()

	logger.Info("Shutting down")
	os.Exit(0)
}

// initLogger builds the application logger. Debug mode raises the level and
// reports call sites; otherwise only Info and above reach the console.
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetReportCaller(true)
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
