// Package options holds the pretty printer's recognized option set
// (spec.md §6) and an env-var overlay via fortio.org/struct2env, mirroring
// how the teacher's dependency set configures ambient tools from the
// environment rather than only from flags.
package options

import "fortio.org/struct2env"

// Options is the full recognized option set. Field tags give each one the
// "pp.xxx" env var name struct2env maps to/from (upper-snake, module
// prefix added by the caller).
type Options struct {
	Indent       int  `env:"PP_INDENT"`
	MaxDepth     int  `env:"PP_MAX_DEPTH"`
	MaxSteps     int  `env:"PP_MAX_STEPS"`
	Implicit     bool `env:"PP_IMPLICIT"`
	Unicode      bool `env:"PP_UNICODE"`
	Coercions    bool `env:"PP_COERCIONS"`
	Notation     bool `env:"PP_NOTATION"`
	Universes    bool `env:"PP_UNIVERSES"`
	FullNames    bool `env:"PP_FULL_NAMES"`
	PrivateNames bool `env:"PP_PRIVATE_NAMES"`
	MetavarArgs  bool `env:"PP_METAVAR_ARGS"`
	Beta         bool `env:"PP_BETA"`
}

// Default mirrors the conservative, "safe to re-parse" default the
// printer ships with: notations and coercion display on, universes and
// full names off, reasonable budgets.
func Default() Options {
	return Options{
		Indent:       2,
		MaxDepth:     128,
		MaxSteps:     10000,
		Implicit:     false,
		Unicode:      true,
		Coercions:    true,
		Notation:     true,
		Universes:    false,
		FullNames:    false,
		PrivateNames: true,
		MetavarArgs:  true,
		Beta:         false,
	}
}

// Equal is identity-equal comparison for set_options' no-op short circuit.
func (o Options) Equal(other Options) bool {
	return o == other
}

// LoadEnvOverlay overlays any PP_* environment variables on top of o,
// using fortio.org/struct2env the way the teacher's own dependency graph
// pulls it in for exactly this purpose.
func LoadEnvOverlay(o Options) (Options, error) {
	if err := struct2env.SetFromEnv(&o); err != nil {
		return o, err
	}
	return o, nil
}
