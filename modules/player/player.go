// Package player draws the local player marker and its view cone.
package player

import (
	"math"

	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
	"mappy/module"
)

const (
	Name   module.Name = "player"
	IconID uint32      = 60443
)

// Config angles are degrees; they are converted when drawing.
type Config struct {
	module.Config `yaml:",inline"`

	ShowCone         bool    `yaml:"show_cone"`
	ConeRadius       float32 `yaml:"cone_radius"`
	ConeAngle        float32 `yaml:"cone_angle"`
	OutlineThickness float32 `yaml:"outline_thickness"`
}

func DefaultConfig() *Config {
	return &Config{
		Config: module.Config{
			Enable: true,
			Layer:  10,
			Icon:   &module.IconConfig{ShowIcon: true, IconScale: 0.40, SelectedIcon: IconID},
			Colors: &module.ColorConfig{
				OutlineColor: module.RGBA(0, 0, 0, 88),
				FillColor:    module.RGBA(163, 219, 255, 80),
			},
		},
		ShowCone:         true,
		ConeRadius:       90,
		ConeAngle:        90,
		OutlineThickness: 2,
	}
}

type Player struct {
	module.Base
	config *Config
}

func New(h host.Host) *Player {
	cfg := DefaultConfig()
	return &Player{Base: module.NewBase(h, cfg), config: cfg}
}

func (p *Player) Name() module.Name {
	return Name
}

func (p *Player) Configuration() module.Configuration {
	return p.config
}

func (p *Player) ShouldDrawMarkers(m maps.Map) bool {
	if !p.IsPlayerInCurrentMap(m) || !p.IsLocalPlayerValid() {
		return false
	}
	return p.Base.ShouldDrawMarkers(m)
}

func (p *Player) DrawMarkers(dl draw.List, vp geom.Viewport, m maps.Map) error {
	player, ok := p.Host.LocalPlayer()
	if !ok {
		return nil
	}

	heading, hasHeading := p.heading()
	tex := draw.WorldToTexture(player.Position.XZ(), m)

	if p.config.ShowCone && hasHeading {
		p.drawCone(dl, draw.TextureToScreen(tex, vp), p.config.ConeRadius*vp.Scale, heading)
	}

	if icon, ok := p.config.IconSettings(); ok && icon.ShowIcon {
		id := icon.SelectedIcon
		if id == 0 {
			id = IconID
		}
		// the icon points north when upright
		var rotation float32
		if hasHeading {
			rotation = heading + math.Pi/2
		}
		draw.DrawIconRotated(dl, id, tex, icon.IconScale, rotation, vp)
	}
	return nil
}

// heading reads the camera rotation once and returns it in screen radians.
func (p *Player) heading() (float32, bool) {
	raw, ok := p.Host.UIState().CameraHeading()
	if !ok {
		return 0, false
	}
	return Heading(raw), true
}

// Heading converts the raw camera value (degrees, counter-clockwise from
// north) to a screen-space angle.
func Heading(raw int32) float32 {
	return -draw.DegreesToRadians(float32(raw)) - math.Pi/2
}

func (p *Player) drawCone(dl draw.List, center geom.Vec2, radius, heading float32) {
	colors, _ := p.config.ColorSettings()
	outline := colors.OutlineColor.NRGBA()
	thickness := p.config.OutlineThickness

	half := draw.DegreesToRadians(p.config.ConeAngle) / 2
	start := heading - half
	stop := heading + half

	dl.Line(center, center.Add(geom.Polar(radius, start)), outline, thickness)
	dl.Line(center, center.Add(geom.Polar(radius, stop)), outline, thickness)

	dl.PathArcTo(center, radius, start, stop)
	dl.PathStroke(outline, thickness)

	dl.PathArcTo(center, radius, start, stop)
	dl.PathLineTo(center)
	dl.PathLineTo(center.Add(geom.Polar(radius, start)))
	dl.PathFillConvex(colors.FillColor.NRGBA())
}
