package internal

import "github.com/rios0rios0/lfsguard/internal/domain/entities"

// AppInternal is the root object resolved from the DIG container.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns every controller to mount as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
