// Package game is the map window: it drives the host, the map controller and
// the module controller from ebiten's frame loop.
package game

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"mappy/config"
	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/logger"
	"mappy/maps"
	"mappy/module"
	"mappy/modules/flag"
	"mappy/monitor"
	"mappy/ui"
)

const (
	panelHeight = 84
	wheelStep   = 1.15
)

type Options struct {
	App        config.App
	Live       *host.Live
	Maps       *maps.Controller
	Modules    *module.Controller
	Flag       *flag.Flag
	TextureDir string
	// Source describes where host data comes from, for the status line.
	Source string
	Log    *logrus.Entry
}

// Game implements ebiten.Game. All fields are owned by the frame loop.
type Game struct {
	live     *host.Live
	maps     *maps.Controller
	modules  *module.Controller
	flag     *flag.Flag
	zones    *monitor.ZoneMonitor
	recorder *draw.Recorder
	canvas   *ui.Canvas
	log      *logrus.Entry

	source     string
	textureDir string
	textures   map[uint32]*ebiten.Image
	sub        maps.Subscription

	toggleKey hotkey
	visible   bool

	width, height  int
	mouseX, mouseY int

	pan      geom.Vec2
	scale    float32
	dragging bool
	dragFrom geom.Vec2
	panFrom  geom.Vec2

	follow     bool
	toggles    []*ui.Toggle
	followBtn  *ui.Toggle
	zoomSlider *ui.Slider

	hostErr string
}

func NewGame(opts Options) (*Game, error) {
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	key, err := newHotkey(opts.App.ToggleKey)
	if err != nil {
		return nil, fmt.Errorf("toggle key: %w", err)
	}

	g := &Game{
		live:       opts.Live,
		maps:       opts.Maps,
		modules:    opts.Modules,
		flag:       opts.Flag,
		zones:      monitor.NewZoneMonitor(),
		recorder:   draw.NewRecorder(),
		canvas:     ui.NewCanvas(ui.NewIconCache(opts.App.IconDir, opts.Log.WithField("component", "icons"))),
		log:        opts.Log,
		source:     opts.Source,
		textureDir: opts.TextureDir,
		textures:   make(map[uint32]*ebiten.Image),
		toggleKey:  key,
		visible:    true,
		width:      opts.App.WindowWidth,
		height:     opts.App.WindowHeight,
		scale:      float32(opts.App.InitialZoom),
		follow:     opts.Maps.Following(),
	}

	x := float32(10)
	for _, m := range g.modules.Modules() {
		cfg := m.Configuration().Base()
		g.toggles = append(g.toggles, ui.NewToggle(ui.DisplayName(string(m.Name())), &cfg.Enable, x, 8, 96, 22))
		x += 102
	}
	g.followBtn = ui.NewToggle("Follow", &g.follow, x, 8, 96, 22)
	g.zoomSlider = &ui.Slider{
		X: float32(g.width) - 230, Y: 22, W: 200, H: 10,
		Min:   config.MIN_ZOOM,
		Max:   config.MAX_ZOOM,
		Label: "Zoom",
		Color: colorAccent,
	}
	g.zoomSlider.SetCurrent(g.scale)

	g.sub = g.maps.Subscribe(g.mapLoaded)
	return g, nil
}

// Close detaches the window from the map controller.
func (g *Game) Close() {
	g.maps.Unsubscribe(g.sub)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.zoomSlider.X = float32(g.width) - 230
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	g.handleInput()

	if err := g.live.Refresh(); err != nil {
		if msg := err.Error(); msg != g.hostErr {
			g.log.WithError(err).Debug("host unavailable")
			g.hostErr = msg
		}
	} else {
		g.hostErr = ""
	}

	territory := g.live.TerritoryID()
	changed := g.zones.Observe(territory)
	if changed {
		g.log.WithField("territory", territory).Info("zone changed")
		g.modules.ZoneChanged(territory)
	}
	if territory != 0 {
		if err := g.maps.Follow(territory, g.live.MapID()); err != nil && changed {
			g.log.WithError(err).Warn("no map for zone")
		}
	}
	g.follow = g.maps.Following()

	g.modules.Update()
	return nil
}

func (g *Game) viewport() geom.Viewport {
	return geom.Viewport{
		Pan:    g.pan,
		Scale:  g.scale,
		Origin: geom.Vec2{Y: panelHeight},
		Cursor: g.cursor(),
	}
}

func (g *Game) cursor() geom.Vec2 {
	return geom.Vec2{X: float32(g.mouseX), Y: float32(g.mouseY)}
}

func (g *Game) inMapArea() bool {
	return g.mouseY > panelHeight && g.mouseY < g.height && g.mouseX >= 0 && g.mouseX < g.width
}

func (g *Game) mapCenter() geom.Vec2 {
	return geom.Vec2{X: float32(g.width) / 2, Y: panelHeight + float32(g.height-panelHeight)/2}
}

func (g *Game) handleInput() {
	g.mouseX, g.mouseY = ebiten.CursorPosition()

	if g.toggleKey.justPressed() {
		g.visible = !g.visible
		g.log.WithField("visible", g.visible).Debug("map window toggled")
	}

	for _, t := range g.toggles {
		t.Hover(g.mouseX, g.mouseY)
	}
	g.followBtn.Hover(g.mouseX, g.mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.zoomSlider.Contains(g.mouseX, g.mouseY):
			g.zoomSlider.Dragging = true
		case g.clickToggles():
			// handled
		case g.visible && g.inMapArea():
			g.dragging = true
			g.dragFrom = g.cursor()
			g.panFrom = g.pan
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.zoomSlider.Dragging {
			g.zoomSlider.SetValueFromX(g.mouseX)
			g.zoomAt(g.mapCenter(), g.zoomSlider.Current())
		}
		if g.dragging {
			g.pan = g.panFrom.Add(g.cursor().Sub(g.dragFrom))
		}
	} else {
		g.zoomSlider.Dragging = false
		g.dragging = false
	}

	if !g.visible || !g.inMapArea() {
		return
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoomAt(g.cursor(), g.scale*float32(math.Pow(wheelStep, wy)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placeFlag()
	}
}

func (g *Game) clickToggles() bool {
	for _, t := range g.toggles {
		if t.Click(g.mouseX, g.mouseY) {
			g.log.WithField("module", t.Name).Info("module toggled")
			if err := g.modules.Save(); err != nil {
				g.log.WithError(err).Warn("save settings")
			}
			return true
		}
	}
	if g.followBtn.Click(g.mouseX, g.mouseY) {
		g.maps.SetFollow(g.follow)
		return true
	}
	return false
}

// zoomAt changes the scale keeping the texture point under anchor fixed.
func (g *Game) zoomAt(anchor geom.Vec2, scale float32) {
	scale = float32(math.Max(config.MIN_ZOOM, math.Min(config.MAX_ZOOM, float64(scale))))
	vp := g.viewport()
	tex := draw.ScreenToTexture(anchor, vp)

	g.scale = scale
	g.pan = anchor.Sub(vp.Origin).Sub(tex.Scale(scale))
	g.zoomSlider.SetCurrent(scale)
}

// centerOn pans so tex sits in the middle of the map area.
func (g *Game) centerOn(tex geom.Vec2) {
	g.pan = g.mapCenter().Sub(geom.Vec2{Y: panelHeight}).Sub(tex.Scale(g.scale))
}

// placeFlag puts the flag under the cursor; with CTRL held it removes it.
func (g *Game) placeFlag() {
	if g.flag == nil {
		return
	}
	m, ok := g.maps.CurrentMap()
	if !ok {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.flag.Clear()
		return
	}
	pos := draw.ScreenToTexture(g.cursor(), g.viewport())
	g.flag.Set(m.ID, pos)
	g.log.WithFields(logrus.Fields{"map": m.ID, "x": pos.X, "y": pos.Y}).Debug("flag placed")
}

func (g *Game) mapLoaded(data maps.MapData) {
	m := data.Map
	log := g.log.WithFields(logrus.Fields{"map": m.ID, "name": m.Name})
	log.Info("map loaded")

	if _, ok := g.textures[m.ID]; !ok && m.Texture != "" {
		path := m.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(g.textureDir, path)
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.WithError(err).Warn("load map texture")
		} else {
			g.textures[m.ID] = img
		}
	}

	if player, ok := g.live.LocalPlayer(); ok && g.live.MapID() == m.ID {
		g.centerOn(draw.WorldToTexture(player.Position.XZ(), m))
		return
	}
	g.centerOn(geom.Vec2{X: maps.TextureSize / 2, Y: maps.TextureSize / 2})
}
