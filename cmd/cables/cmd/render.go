// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/cables/base/errors"
	"cogentcore.org/cables/base/iox/imagex"
	"cogentcore.org/cables/cables"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint/raster"
	"cogentcore.org/cables/ui"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// RenderOptions are the options of the render command.
type RenderOptions struct {
	// Settings is the settings file, or "" for the default settings.
	Settings string

	// Output is the image file to write.
	Output string

	// Width and Height are the size of the image.
	Width, Height int

	// Connect is whether to drag the hanging plug of the default
	// patch onto the filter modulation port before rendering.
	Connect bool
}

func renderCmd() *cobra.Command {
	opts := RenderOptions{}
	var watch bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the default patch to an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				return Render(&opts)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return Watch(ctx, &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Settings, "settings", "s", "", "settings file (.toml or .yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "cables.png", "output image file (.png, .bmp or .tiff)")
	cmd.Flags().IntVar(&opts.Width, "width", 320, "image width")
	cmd.Flags().IntVar(&opts.Height, "height", 280, "image height")
	cmd.Flags().BoolVar(&opts.Connect, "connect", true, "drag the hanging plug onto a port first")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "render again whenever the settings file changes")
	return cmd
}

// RenderPatch runs the given patch in a new headless context with the
// given settings and returns the painted image.
func RenderPatch(p *Patch, set *cables.Settings, size image.Point, connect bool) (*image.RGBA, error) {
	c := ui.NewContext(math32.Vector2FromPoint(size))
	if err := set.Apply(c); err != nil {
		return nil, err
	}
	cables.SetSettings(c, set)
	c.RunFrame(p.Show)
	c.RunFrame(p.Show)
	if connect {
		for _, cb := range p.Cables {
			if cb.Out.To != "" {
				continue
			}
			to, _ := p.PortCenter("filter-mod", set.PortSize)
			p.DragPlug(c, cb.Out.Pos, to)
		}
	}
	pr := raster.New(size)
	pr.Fill(c.Theme.Background)
	c.RenderTo(pr)
	return pr.Snapshot(), nil
}

// Render renders the default patch with the given options.
func Render(opts *RenderOptions) error {
	set := cables.DefaultSettings()
	if opts.Settings != "" {
		var err error
		set, err = cables.OpenSettings(opts.Settings)
		if err != nil {
			return err
		}
	}
	img, err := RenderPatch(DefaultPatch(), set, image.Pt(opts.Width, opts.Height), opts.Connect)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, opts.Output); err != nil {
		return err
	}
	slog.Info("rendered", "output", opts.Output)
	return nil
}

// Watch renders the default patch and renders it again whenever the
// settings file changes, until the context is done.
func Watch(ctx context.Context, opts *RenderOptions) error {
	if opts.Settings == "" {
		return fmt.Errorf("render: watching needs a settings file")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	if err := w.Add(filepath.Dir(opts.Settings)); err != nil {
		return err
	}
	errors.Log(Render(opts))
	target := filepath.Clean(opts.Settings)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("settings changed", "event", ev)
			errors.Log(Render(opts))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
