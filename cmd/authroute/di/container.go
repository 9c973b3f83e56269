// Package di provides dependency injection for the authroute CLI using
// samber/do v2. Injection stays at the application boundary; library
// packages take their collaborators as explicit parameters.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// CredentialsPathKey is the named key for the credentials file path.
const CredentialsPathKey = "credentials.path"

// VerboseKey is the named key for the verbose logging flag.
const VerboseKey = "logging.verbose"

// Container wraps the do.Injector with authroute CLI configuration.
type Container struct {
	injector *do.RootScope
}

// NewContainer creates and configures the DI container. All service
// providers are registered during container creation.
func NewContainer(credentialsPath string, verbose bool) *Container {
	injector := do.New()

	do.ProvideNamedValue(injector, CredentialsPathKey, credentialsPath)
	do.ProvideNamedValue(injector, VerboseKey, verbose)

	RegisterSingletons(injector)

	return &Container{injector: injector}
}

// Invoke resolves a service from the container.
func Invoke[T any](c *Container) (T, error) {
	return do.Invoke[T](c.injector)
}

// MustInvoke resolves a service from the container or panics.
// Use this only during startup where errors are fatal.
func MustInvoke[T any](c *Container) T {
	return do.MustInvoke[T](c.injector)
}

// Shutdown gracefully shuts down all services in reverse order of
// initialization. Returns nil if shutdown succeeded.
func (c *Container) Shutdown() error {
	report := c.injector.Shutdown()
	if report != nil && !report.Succeed {
		return fmt.Errorf("shutdown failed: %s", report.Error())
	}
	return nil
}
