package module

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/sirupsen/logrus"

	"mappy/draw"
	"mappy/geom"
	"mappy/logger"
	"mappy/maps"
)

var errNoConfig = errors.New("module has no configuration")

// Store persists module configurations by name. Load must leave v untouched
// when it returns an error.
type Store interface {
	Load(name string, v any) error
	Save(name string, v any) error
}

// MapEvents delivers map-loaded notifications.
type MapEvents interface {
	Subscribe(fn func(maps.MapData)) maps.Subscription
	Unsubscribe(id maps.Subscription)
}

// Controller owns the module registry. Every method must be called from the
// frame loop goroutine.
type Controller struct {
	modules []Module
	store   Store
	events  MapEvents
	log     *logrus.Entry

	loaded     bool
	subscribed bool
	sub        maps.Subscription
	ranked     []ranked
	order      []Module
}

type ranked struct {
	mod   Module
	layer int
}

// NewController takes the modules in registration order, which breaks layer
// ties. store and events may be nil.
func NewController(store Store, events MapEvents, log *logrus.Entry, modules ...Module) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{
		modules: modules,
		store:   store,
		events:  events,
		log:     log,
		ranked:  make([]ranked, 0, len(modules)),
		order:   make([]Module, 0, len(modules)),
	}
}

func (c *Controller) Modules() []Module {
	return c.modules
}

func (c *Controller) Module(name Name) (Module, bool) {
	for _, m := range c.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

func (c *Controller) Load() {
	c.loaded = true

	for _, m := range c.modules {
		c.guard(m, "settings", func() error {
			c.hydrate(m)
			return nil
		})
		c.guard(m, "load", m.Load)
	}

	if c.events != nil && !c.subscribed {
		c.sub = c.events.Subscribe(c.LoadForMap)
		c.subscribed = true
	}
}

// hydrate overlays persisted settings onto the module's compiled defaults.
// A file that fails to decode leaves the defaults in place.
func (c *Controller) hydrate(m Module) {
	if c.store == nil {
		return
	}
	name := string(m.Name())
	err := c.store.Load(name, m.Configuration())
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		c.log.WithField("module", name).Info("no saved settings, writing defaults")
		if err := c.store.Save(name, m.Configuration()); err != nil {
			c.log.WithField("module", name).WithError(err).Warn("save default settings")
		}
	default:
		c.log.WithField("module", name).WithError(err).Warn("load settings, using defaults")
	}
}

// Ordered returns the modules in draw order: ascending Layer, ties in
// registration order. A module whose layer cannot be read is left out for
// this frame. The slice is reused by the next call.
func (c *Controller) Ordered() []Module {
	c.ranked = c.ranked[:0]
	for _, m := range c.modules {
		var layer int
		ok := c.guard(m, "layer", func() error {
			cfg := m.Configuration()
			if cfg == nil || cfg.Base() == nil {
				return errNoConfig
			}
			layer = cfg.Base().Layer
			return nil
		})
		if ok {
			c.ranked = append(c.ranked, ranked{mod: m, layer: layer})
		}
	}
	slices.SortStableFunc(c.ranked, func(a, b ranked) int {
		return cmp.Compare(a.layer, b.layer)
	})

	c.order = c.order[:0]
	for _, r := range c.ranked {
		c.order = append(c.order, r.mod)
	}
	return c.order
}

func (c *Controller) Draw(dl draw.List, vp geom.Viewport, m maps.Map) {
	for _, mod := range c.Ordered() {
		c.guard(mod, "draw", func() error {
			if !mod.ShouldDrawMarkers(m) {
				return nil
			}
			return mod.DrawMarkers(dl, vp, m)
		})
	}
}

func (c *Controller) ZoneChanged(territoryID uint32) {
	for _, m := range c.modules {
		c.guard(m, "zone", func() error {
			m.ZoneChanged(territoryID)
			return nil
		})
	}
}

func (c *Controller) Update() {
	for _, m := range c.modules {
		c.guard(m, "update", func() error {
			m.Update()
			return nil
		})
	}
}

func (c *Controller) LoadForMap(data maps.MapData) {
	for _, m := range c.modules {
		c.guard(m, "map", func() error {
			m.LoadForMap(data)
			return nil
		})
	}
}

// Unload tears every module down. It is a no-op unless Load ran.
func (c *Controller) Unload() {
	if c.subscribed {
		c.events.Unsubscribe(c.sub)
		c.subscribed = false
	}
	if !c.loaded {
		return
	}
	c.loaded = false

	for _, m := range c.modules {
		c.guard(m, "unload", m.Unload)
	}
}

func (c *Controller) Save() error {
	if c.store == nil {
		return nil
	}
	var errs []error
	for _, m := range c.modules {
		if err := c.store.Save(string(m.Name()), m.Configuration()); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// guard runs one module call and keeps its failure from reaching the
// other modules.
func (c *Controller) guard(m Module, op string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log.WithFields(logrus.Fields{
				"module": m.Name(),
				"op":     op,
				"panic":  r,
			}).Error("module panicked")
			ok = false
		}
	}()

	if err := fn(); err != nil {
		c.log.WithFields(logrus.Fields{
			"module": m.Name(),
			"op":     op,
		}).WithError(err).Warn("module failed")
		return false
	}
	return true
}
