package ui

import (
	"fmt"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// IconCache loads icons as <dir>/<id>.png on first use. Icons that fail to
// load are remembered and not retried.
type IconCache struct {
	dir     string
	images  map[uint32]*ebiten.Image
	missing map[uint32]bool
	log     *logrus.Entry
}

func NewIconCache(dir string, log *logrus.Entry) *IconCache {
	return &IconCache{
		dir:     dir,
		images:  make(map[uint32]*ebiten.Image),
		missing: make(map[uint32]bool),
		log:     log,
	}
}

func (c *IconCache) Get(id uint32) (*ebiten.Image, bool) {
	if img, ok := c.images[id]; ok {
		return img, true
	}
	if c.missing[id] {
		return nil, false
	}

	path := filepath.Join(c.dir, fmt.Sprintf("%d.png", id))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		c.missing[id] = true
		c.log.WithField("icon", id).WithError(err).Debug("icon unavailable, drawing placeholder")
		return nil, false
	}
	c.images[id] = img
	return img, true
}
