// Package config loads formula parameters for the figure commands.
// Every value has a documented default; a YAML file overrides any
// subset, zero/absent fields fall back to the default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// Params are the caller-adjustable coefficients of the figure set.
type Params struct {
	// Linear photorespiration
	Alpha    float64 `yaml:"alpha"`
	AlphaMin float64 `yaml:"alpha_min"`
	AlphaMax float64 `yaml:"alpha_max"`
	PgMax    float64 `yaml:"pg_max"`

	// Rubisco kinetics
	RpMax float64 `yaml:"rp_max"`
	Ks    float64 `yaml:"ks"`
	Kc    float64 `yaml:"kc"`
	Ko    float64 `yaml:"ko"`

	// Net photosynthesis
	Rd    float64 `yaml:"rd"`
	VcMax float64 `yaml:"vc_max"`

	// Maintenance respiration and its modifiers
	Rm0 float64 `yaml:"rm0"`
	Q10 float64 `yaml:"q10"`
	T0  float64 `yaml:"t0"`

	// Growth respiration
	GrowthCoefficient float64 `yaml:"growth_coefficient"`
	GtwMax            float64 `yaml:"gtw_max"`
}

// Default returns the documented parameter set.
func Default() Params {
	return Params{
		Alpha:             respiration.DefaultAlpha,
		AlphaMin:          respiration.AlphaRangeMin,
		AlphaMax:          respiration.AlphaRangeMax,
		PgMax:             40,
		RpMax:             respiration.DefaultRpMax,
		Ks:                respiration.DefaultKs,
		Kc:                respiration.DefaultKc,
		Ko:                respiration.DefaultKo,
		Rd:                respiration.DefaultRd,
		VcMax:             100,
		Rm0:               5,
		Q10:               respiration.DefaultQ10,
		T0:                respiration.DefaultT0,
		GrowthCoefficient: 0.25,
		GtwMax:            30,
	}
}

// Load reads a YAML parameter file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Params, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}

	var file Params
	if err := yaml.Unmarshal(data, &file); err != nil {
		return p, fmt.Errorf("config: parse %s: %w", path, err)
	}
	p.merge(file)
	return p, nil
}

// merge copies every non-zero field of o over p. A zero in the file is
// indistinguishable from an absent field; all parameters here have
// non-zero defaults, so that reading is the intended one.
func (p *Params) merge(o Params) {
	fields := []struct {
		dst *float64
		src float64
	}{
		{&p.Alpha, o.Alpha},
		{&p.AlphaMin, o.AlphaMin},
		{&p.AlphaMax, o.AlphaMax},
		{&p.PgMax, o.PgMax},
		{&p.RpMax, o.RpMax},
		{&p.Ks, o.Ks},
		{&p.Kc, o.Kc},
		{&p.Ko, o.Ko},
		{&p.Rd, o.Rd},
		{&p.VcMax, o.VcMax},
		{&p.Rm0, o.Rm0},
		{&p.Q10, o.Q10},
		{&p.T0, o.T0},
		{&p.GrowthCoefficient, o.GrowthCoefficient},
		{&p.GtwMax, o.GtwMax},
	}
	for _, f := range fields {
		if f.src != 0 {
			*f.dst = f.src
		}
	}
}

// Advisories reports every coefficient lying outside its documented
// typical range. Advisories are logged by the CLI, never fatal.
func (p Params) Advisories() []respiration.RangeAdvisory {
	var advisories []respiration.RangeAdvisory
	if a := respiration.AdviseAlpha(p.Alpha); a != nil {
		advisories = append(advisories, *a)
	}
	if a := respiration.AdviseQ10(p.Q10); a != nil {
		advisories = append(advisories, *a)
	}
	return advisories
}
