package app

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"lumaforge/internal/config"
	"lumaforge/internal/gui"
	"lumaforge/internal/logger"
	"lumaforge/internal/pipeline"
)

const (
	AppName    = "LumaForge"
	AppID      = "com.imageprocessing.lumaforge"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	coordinator *pipeline.Coordinator
	logger      logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewApplication(cfg config.Config, log logger.Logger) *Application {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
	})

	coordinator := pipeline.NewCoordinator(log, cfg)
	log.Info("Application", "operations registered", map[string]interface{}{
		"operations": coordinator.Operations(),
	})

	guiManager := gui.NewManager(window, log, cfg.Controls.Threshold, cfg.Controls.Brightness)

	ctx, cancel := context.WithCancel(context.Background())

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		coordinator: coordinator,
		logger:      log,
		ctx:         ctx,
		cancel:      cancel,
	}
	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.ctx, a.coordinator, a.guiManager, a.logger)

	a.guiManager.SetLoadHandler(handlers.HandleLoad)
	a.guiManager.SetSaveHandler(handlers.HandleSave)
	a.guiManager.SetResetHandler(handlers.HandleReset)
	a.guiManager.SetApplyHandler(handlers.HandleApply)
}

func (a *Application) Run() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.cancel()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.ShowAndRun()

	a.logger.Info("Application", "terminated", nil)
}
