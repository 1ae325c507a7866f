// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/cables/base/errors"
	"cogentcore.org/cables/base/iox/tomlx"
	"cogentcore.org/cables/base/iox/yamlx"
	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles"
	"cogentcore.org/cables/ui"
	"github.com/jinzhu/copier"
)

// Settings are the sizes and thresholds used by the cable widgets.
type Settings struct {
	// PortSize is the diameter of a port.
	PortSize float32 `toml:"port_size" yaml:"port_size"`

	// PlugSize is the diameter of a plug.
	PlugSize float32 `toml:"plug_size" yaml:"plug_size"`

	// ControlSize is the side of the square cable control handle.
	ControlSize float32 `toml:"control_size" yaml:"control_size"`

	// CableHoverDistance2 is the squared distance from a cable within
	// which the pointer hovers it.
	CableHoverDistance2 float32 `toml:"cable_hover_distance2" yaml:"cable_hover_distance2"`

	// DragThreshold is how far the pointer has to move while pressed
	// before a drag starts.
	DragThreshold float32 `toml:"drag_threshold" yaml:"drag_threshold"`

	// Theme is the name of the theme: light or dark.
	Theme string `toml:"theme" yaml:"theme"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		PortSize:            12,
		PlugSize:            12,
		ControlSize:         12,
		CableHoverDistance2: 300,
		DragThreshold:       3,
		Theme:               "light",
	}
}

// Overlay sets the fields of s that are non-zero in o.
func (s *Settings) Overlay(o *Settings) error {
	return copier.CopyWithOption(s, o, copier.Option{IgnoreEmpty: true})
}

// Validate returns an error if any size or threshold is not positive
// or the theme is unknown.
func (s *Settings) Validate() error {
	var errs []error
	check := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("cables.Settings: %s must be positive, not %g", name, v))
		}
	}
	check("port_size", s.PortSize)
	check("plug_size", s.PlugSize)
	check("control_size", s.ControlSize)
	check("cable_hover_distance2", s.CableHoverDistance2)
	if s.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("cables.Settings: drag_threshold must not be negative, not %g", s.DragThreshold))
	}
	if _, err := styles.FromName(s.Theme); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Apply applies the settings that belong to the host to the given context.
func (s *Settings) Apply(c *ui.Context) error {
	vis, err := styles.FromName(s.Theme)
	if err != nil {
		return err
	}
	c.Theme = vis
	c.DragThreshold = s.DragThreshold
	return nil
}

func (s *Settings) portSize() math32.Vector2 {
	return math32.Vector2Scalar(s.PortSize)
}

func (s *Settings) plugSize() math32.Vector2 {
	return math32.Vector2Scalar(s.PlugSize)
}

func (s *Settings) controlSize() math32.Vector2 {
	return math32.Vector2Scalar(s.ControlSize)
}

// OpenSettings returns the default settings overridden by those in the
// given TOML or YAML file, chosen by its extension.
func OpenSettings(filename string) (*Settings, error) {
	s := DefaultSettings()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		return nil, fmt.Errorf("cables.OpenSettings: unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return s, s.Validate()
}

// SaveSettings saves the given settings to the given TOML or YAML file,
// chosen by its extension.
func SaveSettings(s *Settings, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	default:
		return fmt.Errorf("cables.SaveSettings: unsupported settings file extension %q", ext)
	}
}

type settingsKey struct{}

// SettingsOf returns the settings used by the cable widgets shown in
// the given [ui.Ui], which are the [DefaultSettings] unless set with [SetSettings].
func SettingsOf(u ui.Ui) *Settings {
	return ui.DataGetOrInsert(u.Data(), ident.New(settingsKey{}), DefaultSettings)
}

// SetSettings sets the settings used by the cable widgets shown in the given [ui.Ui].
func SetSettings(u ui.Ui, s *Settings) {
	u.Data().Set(ident.New(settingsKey{}), s)
}
