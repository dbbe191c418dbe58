// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng, "no RNG unless explicitly set")
	require.Equal(t, DefaultNoiseSigma, cfg.noiseSigma)
	require.Equal(t, DefaultDeforestRate, cfg.deforestRate)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithNoise(0.1), WithNoise(0.05), WithDeforestRate(0.2))
	require.Equal(t, 0.05, cfg.noiseSigma)
	require.Equal(t, 0.2, cfg.deforestRate)
}

func TestRngFrom(t *testing.T) {
	t.Parallel()

	// Without an attached stream, the seed decides.
	a := rngFrom(newBuilderConfig(), 9).Float64()
	b := rand.New(rand.NewSource(9)).Float64()
	require.Equal(t, b, a)

	// An attached stream is returned as-is.
	r := rand.New(rand.NewSource(1))
	require.Same(t, r, rngFrom(newBuilderConfig(WithRand(r)), 9))
}

func TestOptionConstructors_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand_nil", func() { WithRand(nil) }},
		{"WithNoise_negative", func() { WithNoise(-0.01) }},
		{"WithNoise_NaN", func() { WithNoise(math.NaN()) }},
		{"WithNoise_Inf", func() { WithNoise(math.Inf(1)) }},
		{"WithDeforestRate_below", func() { WithDeforestRate(-0.1) }},
		{"WithDeforestRate_above", func() { WithDeforestRate(1.1) }},
		{"WithDeforestRate_NaN", func() { WithDeforestRate(math.NaN()) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, tc.fn)
		})
	}
}

// Options that bypass the WithX constructors are still rejected at build time.
func TestBuildDeforestation_RuntimeOptionViolation(t *testing.T) {
	t.Parallel()

	badRate := func(c *builderConfig) { c.deforestRate = 2 }
	_, err := BuildDeforestation(10, 1, badRate)
	require.ErrorIs(t, err, ErrOptionViolation)

	badSigma := func(c *builderConfig) { c.noiseSigma = -1 }
	_, err = BuildDeforestation(10, 1, badSigma)
	require.ErrorIs(t, err, ErrOptionViolation)
}
