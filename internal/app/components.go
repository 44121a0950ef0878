package app

import "go.trai.ch/recomp/internal/core/ports"

// Components holds what the command line needs from the wired application.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{App: app, Logger: logger}
}
