// Package party marks the other members of the local player's party.
package party

import (
	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
	"mappy/module"
)

const (
	Name   module.Name = "party"
	IconID uint32      = 60421
)

func DefaultConfig() *module.Config {
	return &module.Config{
		Enable:  true,
		Layer:   7,
		Icon:    &module.IconConfig{ShowIcon: true, IconScale: 0.50, SelectedIcon: IconID},
		Tooltip: &module.TooltipConfig{ShowTooltip: true, TooltipColor: module.RGBA(173, 216, 230, 255)},
	}
}

type Party struct {
	module.Base
	config *module.Config
}

func New(h host.Host) *Party {
	cfg := DefaultConfig()
	return &Party{Base: module.NewBase(h, cfg), config: cfg}
}

func (p *Party) Name() module.Name {
	return Name
}

func (p *Party) Configuration() module.Configuration {
	return p.config
}

func (p *Party) ShouldDrawMarkers(m maps.Map) bool {
	if !p.IsPlayerInCurrentMap(m) {
		return false
	}
	return p.Base.ShouldDrawMarkers(m)
}

func (p *Party) DrawMarkers(dl draw.List, vp geom.Viewport, m maps.Map) error {
	var self uint32
	if player, ok := p.Host.LocalPlayer(); ok {
		self = player.ID
	}

	style := p.config.Style()
	id := IconID
	if icon, ok := p.config.IconSettings(); ok && icon.SelectedIcon != 0 {
		id = icon.SelectedIcon
	}

	for _, member := range p.Host.PartyMembers() {
		if !member.Valid() || member.ID == self {
			continue
		}
		draw.DrawMapIcon(dl, draw.MapIcon{
			IconID:         id,
			ObjectPosition: member.Position.XZ(),
			Tooltip:        member.Name,
		}, style, vp, m)
	}
	return nil
}
