// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque-or-translucent RGBA color that is written to and
// read from settings files as a hex string such as "#3070c0" or "#3070c080".
type Color color.RGBA

// Hex returns a new [Color] from the given hex string, panicking if it is invalid.
// It should only be used for constant colors.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses the given hex string in the #rrggbb or #rrggbbaa form.
func ParseHex(s string) (Color, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("styles.ParseHex: invalid alpha in %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, alpha}, nil
}

// RGBA returns the color as a [color.RGBA].
func (c Color) RGBA() color.RGBA {
	return color.RGBA(c)
}

// Blend returns the color blended toward other by t in [0, 1],
// in the perceptually uniform CIE-L*a*b* space. The alpha is
// interpolated linearly.
func (c Color) Blend(other Color, t float64) Color {
	a, _ := colorful.MakeColor(opaque(c))
	b, _ := colorful.MakeColor(opaque(other))
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	alpha := float64(c.A) + (float64(other.A)-float64(c.A))*t
	return Color{r, g, bl, uint8(alpha + 0.5)}
}

func opaque(c Color) color.RGBA {
	c.A = 255
	return color.RGBA(c)
}

// String returns the hex form of the color.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	nc, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}
