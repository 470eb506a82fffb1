package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewTrackCommand); err != nil {
		return err
	}
	if err := container.Provide(NewQueryCommand); err != nil {
		return err
	}
	if err := container.Provide(NewInstallCommand); err != nil {
		return err
	}
	if err := container.Provide(NewOversizedCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TrackCommand) Track {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *QueryCommand) Query {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *InstallCommand) Install {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *OversizedCommand) Oversized {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
