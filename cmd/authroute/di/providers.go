package di

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"

	"github.com/omarluq/authroute/internal/profiles"
)

// RegisterSingletons registers all CLI service providers on the injector.
func RegisterSingletons(injector do.Injector) {
	do.Provide(injector, newLoggerService)
	do.Provide(injector, newProfileStoreService)
}

func newLoggerService(injector do.Injector) (zerolog.Logger, error) {
	verbose, err := do.InvokeNamed[bool](injector, VerboseKey)
	if err != nil {
		return zerolog.Logger{}, err
	}

	logger := zerolog.New(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return logger.Level(level).With().Timestamp().Logger(), nil
}

func newProfileStoreService(injector do.Injector) (*profiles.Store, error) {
	path, err := do.InvokeNamed[string](injector, CredentialsPathKey)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = profiles.DefaultPath()
	}

	log, err := do.Invoke[zerolog.Logger](injector)
	if err != nil {
		return nil, err
	}

	store, err := profiles.Load(path)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("profiles", len(store.Profiles)).Msg("credentials loaded")
	return store, nil
}
