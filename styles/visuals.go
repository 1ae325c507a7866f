// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the visual styles used to paint ports,
// plugs, cables and cable controls in their different interaction states.
package styles

import (
	"fmt"
	"strings"
)

// Stroke is the style of a line.
type Stroke struct {
	Width float32
	Color Color
}

// WidgetVisuals is the look of a widget in one interaction state.
type WidgetVisuals struct {
	// BgFill is the fill color of the widget body.
	BgFill Color

	// FgStroke is the stroke used for outlines, cables and markers.
	FgStroke Stroke

	// Rounding is the corner radius of rectangular widgets.
	Rounding float32
}

// Widgets has the [WidgetVisuals] for each interaction state.
type Widgets struct {
	// Noninteractive is used for widgets that can not be interacted with,
	// such as locked plugs.
	Noninteractive WidgetVisuals

	// Inactive is used for interactive widgets that are not hovered or dragged.
	Inactive WidgetVisuals

	// Hovered is used for widgets under the pointer.
	Hovered WidgetVisuals

	// Active is used for widgets being dragged, and for active cables.
	Active WidgetVisuals
}

// Visuals is a full theme.
type Visuals struct {
	// Name is the name of the theme.
	Name string

	// Dark is whether this is a dark theme.
	Dark bool

	// Background is the color behind the widgets.
	Background Color

	// Widgets has the looks of widgets by state.
	Widgets Widgets
}

// States are the mutually exclusive visual states a widget is painted in.
type States int32

const (
	// Inactive is the default state.
	Inactive States = iota

	// Hovered is when the pointer is over the widget.
	Hovered

	// Active is when the widget is dragged or selected.
	Active

	// Noninteractive is when the widget can not be interacted with.
	Noninteractive
)

// For returns the [WidgetVisuals] for the given state.
func (w *Widgets) For(st States) WidgetVisuals {
	switch st {
	case Hovered:
		return w.Hovered
	case Active:
		return w.Active
	case Noninteractive:
		return w.Noninteractive
	}
	return w.Inactive
}

// StateOf returns the visual state of a widget, where active (dragged or
// selected) takes precedence over hovered.
func StateOf(hovered, active bool) States {
	switch {
	case active:
		return Active
	case hovered:
		return Hovered
	}
	return Inactive
}

// newWidgets derives the widget visuals for all states from a base fill,
// a foreground color and an accent color. Hovered and active shades are
// blended toward the accent.
func newWidgets(bg, fg, accent Color) Widgets {
	inactive := WidgetVisuals{BgFill: bg, FgStroke: Stroke{Width: 1, Color: fg}, Rounding: 3}
	hovered := WidgetVisuals{BgFill: bg.Blend(accent, 0.35), FgStroke: Stroke{Width: 1.5, Color: fg.Blend(accent, 0.5)}, Rounding: 3}
	active := WidgetVisuals{BgFill: bg.Blend(accent, 0.7), FgStroke: Stroke{Width: 2, Color: accent}, Rounding: 3}
	nonint := WidgetVisuals{BgFill: bg, FgStroke: Stroke{Width: 1, Color: fg.Blend(bg, 0.6)}, Rounding: 3}
	return Widgets{Noninteractive: nonint, Inactive: inactive, Hovered: hovered, Active: active}
}

// Light returns the default light theme.
func Light() Visuals {
	return Visuals{
		Name:       "light",
		Background: Hex("#f8f8f8"),
		Widgets:    newWidgets(Hex("#e0e0e0"), Hex("#3c3c3c"), Hex("#1e88e5")),
	}
}

// Dark returns the default dark theme.
func Dark() Visuals {
	return Visuals{
		Name:       "dark",
		Dark:       true,
		Background: Hex("#1b1b1b"),
		Widgets:    newWidgets(Hex("#3c3c3c"), Hex("#d0d0d0"), Hex("#90caf9")),
	}
}

// FromName returns the built-in theme with the given name (light or dark).
func FromName(name string) (Visuals, error) {
	switch strings.ToLower(name) {
	case "", "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	}
	return Visuals{}, fmt.Errorf("styles.FromName: unknown theme %q", name)
}
