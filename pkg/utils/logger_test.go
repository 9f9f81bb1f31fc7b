package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewSugaredLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "production", verbose: false, wantDebug: false},
		{name: "development", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sugar, err := NewSugaredLogger("intseq", tt.verbose)
			require.NoError(t, err)
			require.NotNil(t, sugar)
			require.Equal(t, tt.wantDebug, sugar.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}
