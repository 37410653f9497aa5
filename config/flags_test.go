package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSeed(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *int64
	}{
		{"unset", nil, nil},
		{"explicit zero", []string{"-seed", "0"}, ptr(int64(0))},
		{"explicit value", []string{"-seed=42"}, ptr(int64(42))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			seed := fs.Int64("seed", 0, "")
			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.want, FlagSeed(fs, seed))
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
