package maps

import (
	"fmt"
	"time"
)

// Subscription identifies a map-loaded listener.
type Subscription int

// Controller resolves which map is displayed and notifies listeners when it
// changes. It is driven from the frame loop and is not safe for concurrent use.
type Controller struct {
	catalog   *Catalog
	current   Map
	ready     bool
	follow    bool
	listeners map[Subscription]func(MapData)
	order     []Subscription
	nextID    Subscription
	now       func() time.Time
}

func NewController(catalog *Catalog) *Controller {
	return &Controller{
		catalog:   catalog,
		follow:    true,
		listeners: make(map[Subscription]func(MapData)),
		now:       time.Now,
	}
}

func (c *Controller) Ready() bool {
	return c.ready
}

func (c *Controller) CurrentMap() (Map, bool) {
	return c.current, c.ready
}

func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

func (c *Controller) Following() bool {
	return c.follow
}

func (c *Controller) SetFollow(follow bool) {
	c.follow = follow
}

// Load displays the given map. It counts as user navigation and turns off
// follow mode.
func (c *Controller) Load(mapID uint32) error {
	if err := c.show(mapID); err != nil {
		return err
	}
	c.follow = false
	return nil
}

// Follow switches to the player's map if follow mode is on. mapID wins over
// territoryID when both resolve.
func (c *Controller) Follow(territoryID, mapID uint32) error {
	if !c.follow {
		return nil
	}
	if m, ok := c.catalog.Map(mapID); ok {
		return c.show(m.ID)
	}
	m, ok := c.catalog.ForTerritory(territoryID)
	if !ok {
		return fmt.Errorf("territory %d: %w", territoryID, ErrUnknownMap)
	}
	return c.show(m.ID)
}

func (c *Controller) show(mapID uint32) error {
	m, ok := c.catalog.Map(mapID)
	if !ok {
		return fmt.Errorf("map %d: %w", mapID, ErrUnknownMap)
	}
	if c.ready && c.current.ID == m.ID {
		return nil
	}

	c.current = m
	c.ready = true

	data := MapData{Map: m, LoadedAt: c.now()}
	for _, id := range c.order {
		if fn, ok := c.listeners[id]; ok {
			fn(data)
		}
	}
	return nil
}

func (c *Controller) Subscribe(fn func(MapData)) Subscription {
	c.nextID++
	c.listeners[c.nextID] = fn
	c.order = append(c.order, c.nextID)
	return c.nextID
}

func (c *Controller) Unsubscribe(id Subscription) {
	if _, ok := c.listeners[id]; !ok {
		return
	}
	delete(c.listeners, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
