// Package pet marks pets and chocobos owned by the party.
package pet

import (
	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
	"mappy/module"
)

const (
	Name   module.Name = "pet"
	IconID uint32      = 60961
)

func DefaultConfig() *module.Config {
	return &module.Config{
		Enable:  true,
		Layer:   5,
		Icon:    &module.IconConfig{ShowIcon: true, IconScale: 0.75, SelectedIcon: IconID},
		Tooltip: &module.TooltipConfig{ShowTooltip: true, TooltipColor: module.RGBA(147, 112, 219, 255)},
	}
}

type Pet struct {
	module.Base
	config *module.Config
}

func New(h host.Host) *Pet {
	cfg := DefaultConfig()
	return &Pet{Base: module.NewBase(h, cfg), config: cfg}
}

func (p *Pet) Name() module.Name {
	return Name
}

func (p *Pet) Configuration() module.Configuration {
	return p.config
}

func (p *Pet) ShouldDrawMarkers(m maps.Map) bool {
	if !p.IsPlayerInCurrentMap(m) {
		return false
	}
	return p.Base.ShouldDrawMarkers(m)
}

func (p *Pet) DrawMarkers(dl draw.List, vp geom.Viewport, m maps.Map) error {
	owners := p.Host.PartyMembers()
	if len(owners) == 0 {
		if player, ok := p.Host.LocalPlayer(); ok {
			owners = []host.Entity{player}
		}
	}

	style := p.config.Style()
	id := IconID
	if icon, ok := p.config.IconSettings(); ok && icon.SelectedIcon != 0 {
		id = icon.SelectedIcon
	}

	objects := p.Host.Objects()
	for _, owner := range owners {
		if !owner.Valid() {
			continue
		}
		for _, obj := range objects {
			if obj.OwnerID != owner.ID || !IsPetOrChocobo(obj) {
				continue
			}
			draw.DrawMapIcon(dl, draw.MapIcon{
				IconID:         id,
				ObjectPosition: obj.Position.XZ(),
				Tooltip:        obj.Name,
			}, style, vp, m)
		}
	}
	return nil
}

func IsPetOrChocobo(e host.Entity) bool {
	if e.Kind != host.KindBattleNpc {
		return false
	}
	switch e.SubKind {
	case host.SubKindPet, host.SubKindChocobo:
		return true
	}
	return false
}
