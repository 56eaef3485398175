package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openarith/natcore/nat"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.toml")
	contents := "mul_karatsuba_threshold = 7\ndiv_newton_threshold = 2048\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, got.MulKaratsuba)
	assert.Equal(t, 2048, got.DivNewton)
	// Fields absent from the file keep the compiled-in defaults.
	assert.Equal(t, Defaults().MulFFT, got.MulFFT)
	assert.Equal(t, Defaults().DivConquer, got.DivConquer)
}

func TestApplyPushesIntoDispatcher(t *testing.T) {
	orig := Defaults()
	t.Cleanup(func() { orig.Apply() })

	Thresholds{MulKaratsuba: 11, MulFFT: 22, DivConquer: 33, DivNewton: 44}.Apply()

	assert.Equal(t, 11, nat.MulKaratsubaThreshold)
	assert.Equal(t, 22, nat.MulFFTThreshold)
	assert.Equal(t, 33, nat.DivConquerThreshold)
	assert.Equal(t, 44, nat.DivNewtonThreshold)
}
