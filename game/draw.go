package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mappy/draw"
	"mappy/geom"
	"mappy/maps"
	"mappy/ui"
)

var (
	colorBg      = color.RGBA{20, 25, 30, 255}
	colorPanel   = color.RGBA{25, 30, 38, 255}
	colorBorder  = color.RGBA{50, 58, 70, 255}
	colorGrid    = color.RGBA{40, 46, 56, 255}
	colorText    = color.RGBA{220, 220, 220, 255}
	colorTextDim = color.RGBA{140, 140, 140, 255}
	colorRed     = color.RGBA{255, 60, 60, 255}
	colorAccent  = color.RGBA{80, 150, 230, 255}
)

const gridStep = 256

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBg)

	if g.visible {
		g.drawMap(screen)
	} else {
		g.drawCenteredText(screen, fmt.Sprintf("Map hidden, press %s", g.toggleKey), colorTextDim)
	}

	g.drawPanel(screen)
}

func (g *Game) drawMap(screen *ebiten.Image) {
	m, ok := g.maps.CurrentMap()
	if !ok {
		g.drawCenteredText(screen, "Waiting for map...", colorTextDim)
		return
	}

	area := screen.SubImage(image.Rect(0, panelHeight, g.width, g.height)).(*ebiten.Image)
	vp := g.viewport()

	if tex, ok := g.textures[m.ID]; ok {
		g.drawTexture(area, tex, vp)
	} else {
		g.drawGrid(area, vp)
	}

	g.recorder.Reset()
	g.modules.Draw(g.recorder, vp, m)
	g.canvas.Replay(area, g.recorder.Commands())
}

// drawTexture stretches the image over the full texture space.
func (g *Game) drawTexture(dst, tex *ebiten.Image, vp geom.Viewport) {
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	origin := draw.TextureToScreen(geom.Vec2{}, vp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(maps.TextureSize/float64(w)*float64(vp.Scale), maps.TextureSize/float64(h)*float64(vp.Scale))
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(tex, op)
}

func (g *Game) drawGrid(dst *ebiten.Image, vp geom.Viewport) {
	for i := 0; i <= maps.TextureSize; i += gridStep {
		f := float32(i)
		a := draw.TextureToScreen(geom.Vec2{X: f}, vp)
		b := draw.TextureToScreen(geom.Vec2{X: f, Y: maps.TextureSize}, vp)
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1, colorGrid, false)

		a = draw.TextureToScreen(geom.Vec2{Y: f}, vp)
		b = draw.TextureToScreen(geom.Vec2{X: maps.TextureSize, Y: f}, vp)
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1, colorGrid, false)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	w := float32(g.width)
	vector.DrawFilledRect(screen, 0, 0, w, panelHeight, colorPanel, false)
	vector.StrokeLine(screen, 0, panelHeight, w, panelHeight, 1, colorBorder, false)

	for _, t := range g.toggles {
		t.Draw(screen)
	}
	g.followBtn.Draw(screen)
	g.zoomSlider.Draw(screen)

	x, y := 10.0, 39.0
	ui.DrawText(screen, g.statusLine(), x, y, colorText)

	y += 18
	if g.hostErr != "" {
		ui.DrawText(screen, ui.TruncStr(g.hostErr, (g.width-20)/7), x, y, colorRed)
	} else if e, ok := g.zones.Last(); ok {
		line := fmt.Sprintf("%s  zone %d -> %d", e.Time.Format("15:04:05"), e.From, e.To)
		ui.DrawText(screen, line, x, y, colorTextDim)
	}

	fps := fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())
	ui.DrawText(screen, fps, float64(g.width-80), y, colorTextDim)
}

func (g *Game) statusLine() string {
	name := "-"
	if m, ok := g.maps.CurrentMap(); ok {
		name = m.Name
		if name == "" {
			name = fmt.Sprintf("map %d", m.ID)
		}
	}
	return fmt.Sprintf("%s | territory %d | %s | toggle %s",
		g.source, g.live.TerritoryID(), name, g.toggleKey)
}

func (g *Game) drawCenteredText(screen *ebiten.Image, s string, clr color.Color) {
	cy := panelHeight + float64(g.height-panelHeight)/2
	ui.DrawTextCentered(screen, s, float64(g.width)/2, cy, clr)
}
