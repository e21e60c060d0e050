// Package flag keeps a user-placed map flag and draws it.
package flag

import (
	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
	"mappy/module"
)

const (
	Name    module.Name = "flag"
	IconID  uint32      = 60561
	Tooltip             = "Flag"
)

func DefaultConfig() *module.Config {
	return &module.Config{
		Enable:  true,
		Layer:   15,
		Icon:    &module.IconConfig{ShowIcon: true, IconScale: 0.75, SelectedIcon: IconID},
		Tooltip: &module.TooltipConfig{ShowTooltip: true, TooltipColor: module.RGBA(255, 255, 255, 255)},
	}
}

// Flag holds at most one flag. Placing a new one replaces the old, so there
// is never more than one per map.
type Flag struct {
	module.Base
	config *module.Config

	set   bool
	mapID uint32
	pos   geom.Vec2
}

func New(h host.Host) *Flag {
	cfg := DefaultConfig()
	return &Flag{Base: module.NewBase(h, cfg), config: cfg}
}

func (f *Flag) Name() module.Name {
	return Name
}

func (f *Flag) Configuration() module.Configuration {
	return f.config
}

// Set places the flag at a texture position on the given map.
func (f *Flag) Set(mapID uint32, pos geom.Vec2) {
	f.set = true
	f.mapID = mapID
	f.pos = pos
}

func (f *Flag) Clear() {
	f.set = false
	f.mapID = 0
	f.pos = geom.Vec2{}
}

func (f *Flag) HasFlag(mapID uint32) bool {
	return f.set && f.mapID == mapID
}

// Position returns the flag's texture position on mapID.
func (f *Flag) Position(mapID uint32) (geom.Vec2, bool) {
	if !f.HasFlag(mapID) {
		return geom.Vec2{}, false
	}
	return f.pos, true
}

func (f *Flag) Unload() error {
	f.Clear()
	return nil
}

func (f *Flag) ShouldDrawMarkers(m maps.Map) bool {
	if !f.HasFlag(m.ID) {
		return false
	}
	return f.Base.ShouldDrawMarkers(m)
}

func (f *Flag) DrawMarkers(dl draw.List, vp geom.Viewport, m maps.Map) error {
	pos, ok := f.Position(m.ID)
	if !ok {
		return nil
	}
	id := IconID
	if icon, ok := f.config.IconSettings(); ok && icon.SelectedIcon != 0 {
		id = icon.SelectedIcon
	}
	draw.DrawMapIcon(dl, draw.MapIcon{
		IconID:             id,
		TexturePosition:    pos,
		HasTexturePosition: true,
		Tooltip:            Tooltip,
	}, f.config.Style(), vp, m)
	return nil
}
