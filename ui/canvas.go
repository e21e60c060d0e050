package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mappy/draw"
	"mappy/geom"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	colorPlaceholder = color.RGBA{230, 230, 230, 255}
	colorTooltipBg   = color.RGBA{0, 0, 0, 190}
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas replays recorded draw commands onto an ebiten image.
type Canvas struct {
	Icons *IconCache

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas(icons *IconCache) *Canvas {
	return &Canvas{Icons: icons}
}

func (c *Canvas) Replay(dst *ebiten.Image, cmds []draw.Command) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case draw.KindLine, draw.KindPolyline:
			c.stroke(dst, cmd)
		case draw.KindPolygon:
			c.fill(dst, cmd)
		case draw.KindSprite:
			c.sprite(dst, cmd)
		case draw.KindTooltip:
			c.tooltip(dst, cmd)
		}
	}
}

func (c *Canvas) stroke(dst *ebiten.Image, cmd *draw.Command) {
	pts := cmd.Points
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, cmd.Thickness, cmd.Color, true)
	}
}

func (c *Canvas) fill(dst *ebiten.Image, cmd *draw.Command) {
	pts := cmd.Points
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r := float32(cmd.Color.R) / 0xff
	g := float32(cmd.Color.G) / 0xff
	b := float32(cmd.Color.B) / 0xff
	a := float32(cmd.Color.A) / 0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

func (c *Canvas) sprite(dst *ebiten.Image, cmd *draw.Command) {
	center := cmd.Points[0]

	var img *ebiten.Image
	if c.Icons != nil {
		img, _ = c.Icons.Get(cmd.IconID)
	}
	if img == nil {
		radius := cmd.Size / 4
		vector.DrawFilledCircle(dst, center.X, center.Y, radius, colorPlaceholder, true)
		vector.StrokeCircle(dst, center.X, center.Y, radius, 1, color.Black, true)
		if cmd.Rotation != 0 {
			// show the facing on the placeholder
			tip := geom.Polar(radius*1.8, cmd.Rotation-math.Pi/2)
			vector.StrokeLine(dst, center.X, center.Y, center.X+tip.X, center.Y+tip.Y, 2, colorPlaceholder, true)
		}
		return
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(float64(cmd.Size)/float64(w), float64(cmd.Size)/float64(h))
	op.GeoM.Rotate(float64(cmd.Rotation))
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (c *Canvas) tooltip(dst *ebiten.Image, cmd *draw.Command) {
	at := cmd.Points[0]
	w, h := MeasureText(cmd.Text)

	x := float64(at.X) + 12
	y := float64(at.Y) - 20
	vector.DrawFilledRect(dst,
		float32(x-4), float32(y-3),
		float32(w+8), float32(h+6),
		colorTooltipBg, false)
	DrawText(dst, cmd.Text, x, y, cmd.Color)
}
