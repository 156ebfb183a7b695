// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the configuration file of the colorimetry command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
)

// ErrInvalidConfig is wrapped by all errors caused by invalid settings.
var ErrInvalidConfig = errors.New("invalid config")

// Error wraps a configuration problem with the operation and file name.
type Error struct {
	Op   string
	Path string // optional
	Err  error
}

func (e *Error) Error() string {
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Output formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the settings of the colorimetry command.
type Config struct {
	// Display is the display used for RGB conversions.
	Display *display.Display

	// Displays holds the built-in and the configured displays, by name.
	Displays map[string]*display.Display

	// Field is the field size used for cone fundamentals.
	Field cone.Field

	// Format is one of FormatAuto, FormatText and FormatYAML.
	Format string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Display:  display.SRGB,
		Displays: display.Builtin(),
		Field:    cone.TwoDegree,
		Format:   FormatAuto,
	}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "config.load", Path: path, Err: err}
	}
	return Parse(path, b)
}

// Parse decodes the contents of a configuration file.  The path is only
// used in error messages.
func Parse(path string, data []byte) (*Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &Error{
			Op:   "config.parse",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		}
	}
	return Map(path, dto)
}

// Lookup returns the display with the given name.
func (c *Config) Lookup(name string) (*display.Display, error) {
	d, ok := c.Displays[name]
	if !ok {
		return nil, fmt.Errorf("unknown display %q", name)
	}
	return d, nil
}
