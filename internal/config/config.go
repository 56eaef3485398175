// Package config loads the dispatcher's algorithm-selection thresholds
// from a TOML file (falling back to the compiled-in defaults), grounded
// on go-musicfox's internal/configs loader: default values loaded first
// via koanf's structs provider, then overlaid with whatever the file on
// disk supplies.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/openarith/natcore/nat"
)

// Thresholds mirrors the dispatcher's compile-time constants, letting an
// operator retune them without a rebuild.
type Thresholds struct {
	MulKaratsuba int `koanf:"mul_karatsuba_threshold"`
	MulFFT       int `koanf:"mul_fft_threshold"`
	DivConquer   int `koanf:"div_conquer_threshold"`
	DivNewton    int `koanf:"div_newton_threshold"`
}

// Defaults returns the dispatcher's current thresholds: the compiled-in
// defaults unless Apply (or another writer of nat's threshold vars) has
// changed them since.
func Defaults() Thresholds {
	return Thresholds{
		MulKaratsuba: nat.MulKaratsubaThreshold,
		MulFFT:       nat.MulFFTThreshold,
		DivConquer:   nat.DivConquerThreshold,
		DivNewton:    nat.DivNewtonThreshold,
	}
}

// Load reads Thresholds from a TOML file at path, overlaying the values
// Defaults returns; a missing file is not an error, since every
// field already has a usable default.
func Load(path string) (Thresholds, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Thresholds{}, errors.Wrap(err, "config: loading defaults")
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return Thresholds{}, errors.Wrapf(err, "config: reading %s", path)
		}
	}

	var out Thresholds
	if err := k.Unmarshal("", &out); err != nil {
		return Thresholds{}, errors.Wrap(err, "config: unmarshalling thresholds")
	}
	return out, nil
}

// Apply pushes t into the dispatcher's package-level threshold vars.
func (t Thresholds) Apply() {
	nat.MulKaratsubaThreshold = t.MulKaratsuba
	nat.MulFFTThreshold = t.MulFFT
	nat.DivConquerThreshold = t.DivConquer
	nat.DivNewtonThreshold = t.DivNewton
}
