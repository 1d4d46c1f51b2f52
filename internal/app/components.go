package app

import "go.trai.ch/bento/internal/core/ports"

// Components holds the resolved entry points of the application.
type Components struct {
	App    *App
	Logger ports.Logger
}
