package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// NewSugaredLogger creates a named sugared logger based on the verbose flag.
// If verbose is true, it creates a development logger, otherwise a production logger.
// Both write to stderr so command output on stdout stays machine readable.
func NewSugaredLogger(name string, verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		if verbose {
			return nil, fmt.Errorf("failed to create development logger: %w", err)
		}
		return nil, fmt.Errorf("failed to create production logger: %w", err)
	}
	return l.Named(name).Sugar(), nil
}
