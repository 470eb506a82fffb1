package controllers

import (
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []interface{}{
		NewTrackController,
		NewTrackPathsController,
		NewListController,
		NewStatusController,
		NewCheckController,
		NewOversizedController,
		NewInstallController,
		NewVersionController,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	trackController *TrackController,
	trackPathsController *TrackPathsController,
	listController *ListController,
	statusController *StatusController,
	checkController *CheckController,
	oversizedController *OversizedController,
	installController *InstallController,
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		trackController,
		trackPathsController,
		listController,
		statusController,
		checkController,
		oversizedController,
		installController,
		versionController,
	}
}
