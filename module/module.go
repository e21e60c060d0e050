// Package module defines map overlay modules and the controller that drives
// them. Modules are created once at startup, hold their configuration, and
// contribute draw commands to every frame they are eligible for.
package module

import (
	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
)

// Name is the stable identity of a module; settings are keyed by it.
type Name string

type Module interface {
	Name() Name
	Configuration() Configuration

	Load() error
	Unload() error
	// Update runs every frame, even when the map window is hidden.
	Update()
	// ZoneChanged is delivered regardless of Enable.
	ZoneChanged(territoryID uint32)
	LoadForMap(data maps.MapData)

	// ShouldDrawMarkers is evaluated fresh every frame.
	ShouldDrawMarkers(m maps.Map) bool
	DrawMarkers(dl draw.List, vp geom.Viewport, m maps.Map) error
}

// Base gives a module the default lifecycle and the shared context checks.
// Modules embed it and call Base.ShouldDrawMarkers last from their own.
type Base struct {
	Host host.Host
	cfg  Configuration
}

func NewBase(h host.Host, cfg Configuration) Base {
	return Base{Host: h, cfg: cfg}
}

func (b *Base) Load() error {
	return nil
}

func (b *Base) Unload() error {
	return nil
}

func (b *Base) Update() {}

func (b *Base) ZoneChanged(uint32) {}

func (b *Base) LoadForMap(maps.MapData) {}

func (b *Base) ShouldDrawMarkers(maps.Map) bool {
	return b.cfg.Base().Enable
}

func (b *Base) IsPlayerInCurrentMap(m maps.Map) bool {
	return b.Host.MapID() == m.ID
}

func (b *Base) IsLocalPlayerValid() bool {
	_, ok := b.Host.LocalPlayer()
	return ok
}
