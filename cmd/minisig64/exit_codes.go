package main

import (
	"errors"

	"github.com/ZebulonRouseFrantzich/minisig64/internal/config"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/fetch"
)

// Exit codes for the minisig64 CLI.
// 1 stays the usage code for compatibility with earlier script versions.
const (
	ExitSuccess  = 0 // Lines printed
	ExitUsage    = 1 // Wrong arguments or flags
	ExitFetch    = 2 // Network, TLS or HTTP status failure
	ExitConfig   = 3 // Config file could not be loaded
	ExitRejected = 4 // --strict rejected the content
	ExitGeneral  = 5 // Anything else
)

// exitCodeFor returns the appropriate exit code for an error.
// It relies on wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case fetch.Error.Has(err):
		return ExitFetch
	case errors.Is(err, config.ErrConfig):
		return ExitConfig
	case errors.Is(err, ErrUnrecognizedSignature):
		return ExitRejected
	case errors.Is(err, ErrInvalidTarget):
		return ExitUsage
	default:
		return ExitGeneral
	}
}
