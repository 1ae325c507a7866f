// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"cogentcore.org/cables/cables"
	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/ui"
)

// Patch is a set of named ports and the cables between them, updated
// from the events of the cable widgets.
type Patch struct {
	Ports  []PatchPort
	Cables []*PatchCable
}

// PatchPort is a port at a fixed position.
type PatchPort struct {
	Name string
	Pos  math32.Vector2
}

// PatchCable is a cable and where its plugs are.
type PatchCable struct {
	ID  int
	In  PatchPlug
	Out PatchPlug
}

// PatchPlug is the port a plug is plugged to, or its position if unplugged.
type PatchPlug struct {
	To  string
	Pos math32.Vector2
}

func (p *PatchPlug) plug() *cables.Plug {
	if p.To == "" {
		return cables.Unplugged().SetPos(p.Pos)
	}
	return cables.PlugTo(p.To).SetPos(p.Pos)
}

// update updates the plug from its response.
func (p *PatchPlug) update(cable int, r cables.PlugResponse) {
	if to, ok := r.ConnectedTo(); ok {
		p.To = ident.MustAs[string](to.ID)
		slog.Info("connected", "cable", cable, "end", r.End(), "port", p.To)
	}
	if r.Disconnected() {
		slog.Info("disconnected", "cable", cable, "end", r.End(), "port", p.To)
		p.To = ""
	}
	p.Pos = r.NextPosition()
}

// DefaultPatch returns a patch with an oscillator, a filter and an
// output, with the oscillator plugged to the filter and a cable from
// the output hanging unplugged.
func DefaultPatch() *Patch {
	return &Patch{
		Ports: []PatchPort{
			{"osc", math32.Vec2(40, 40)},
			{"filter", math32.Vec2(200, 40)},
			{"filter-mod", math32.Vec2(200, 120)},
			{"out", math32.Vec2(40, 200)},
		},
		Cables: []*PatchCable{
			{ID: 1, In: PatchPlug{To: "osc"}, Out: PatchPlug{To: "filter"}},
			{ID: 2, In: PatchPlug{To: "out"}, Out: PatchPlug{Pos: math32.Vec2(140, 220)}},
		},
	}
}

// Show shows the patch in the given [ui.Ui] for one frame.
func (p *Patch) Show(u ui.Ui) {
	for _, port := range p.Ports {
		u.SetNextWidgetPos(port.Pos)
		cables.NewPort(cables.NewPortID(port.Name)).Show(u)
	}
	for _, c := range p.Cables {
		resp := cables.NewCable(cables.NewCableID(c.ID), c.In.plug(), c.Out.plug()).Show(u)
		c.In.update(c.ID, resp.InPlug())
		c.Out.update(c.ID, resp.OutPlug())
	}
}

// PortCenter returns the center of the port with the given name.
func (p *Patch) PortCenter(name string, size float32) (math32.Vector2, bool) {
	for _, port := range p.Ports {
		if port.Name == name {
			return port.Pos.AddScalar(size / 2), true
		}
	}
	return math32.Vector2{}, false
}

// DragPlug drives the given context to drag a plug from one position
// to another over several frames, showing the patch in each.
func (p *Patch) DragPlug(c *ui.Context, from, to math32.Vector2) {
	frame := func() { c.RunFrame(p.Show) }
	c.MoveTo(from)
	frame()
	c.Press()
	frame()
	const steps = 8
	for i := 1; i <= steps; i++ {
		c.MoveTo(from.Lerp(to, float32(i)/steps))
		frame()
	}
	frame()
	c.Release()
	frame()
	c.MoveTo(math32.Vec2(-100, -100))
	frame()
}
