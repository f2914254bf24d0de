// Package settings supplies process configuration, most importantly the
// active chord notation style consumed by the chord engine. Values come
// from environment variables (CANTUS_ prefix) with sensible defaults
// and are validated on load.
package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/errors"
)

type (
	Settings struct {
		Chords  Chords
		Logging Logging
	}

	Chords struct {
		// Notation selects the chord letter names: "international" or
		// "german" (B/H naming).
		Notation string `validate:"oneof=international german"`
		// LongNames renders long quality names ("min" instead of "m").
		LongNames bool
	}

	Logging struct {
		Level  string `validate:"oneof=debug info warn error"`
		Format string `validate:"oneof=text json"`
	}
)

var validate = validator.New()

// New loads settings from the environment.
func New() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("CANTUS")
	v.AutomaticEnv()

	v.SetDefault("chord_notation", "international")
	v.SetDefault("chord_long_names", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	s := &Settings{
		Chords: Chords{
			Notation:  v.GetString("chord_notation"),
			LongNames: v.GetBool("chord_long_names"),
		},
		Logging: Logging{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}
	if err := validate.Struct(s); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return s, nil
}

// Notation returns the chord notation the settings select.
func (s *Settings) Notation() chord.Notation {
	return chord.Notation{
		German: s.Chords.Notation == "german",
		Long:   s.Chords.LongNames,
	}
}
