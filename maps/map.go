package maps

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TextureSize is the edge length of every map texture in texture space.
const TextureSize = 2048

var ErrUnknownMap = errors.New("unknown map")

// Map is one displayable map. Values are replaced wholesale, never mutated.
type Map struct {
	ID          uint32 `yaml:"id"`
	TerritoryID uint32 `yaml:"territory"`
	Name        string `yaml:"name"`
	SizeFactor  uint16 `yaml:"size_factor"`
	OffsetX     int16  `yaml:"offset_x"`
	OffsetY     int16  `yaml:"offset_y"`
	Texture     string `yaml:"texture"`
}

// MapData is delivered to subscribers when a map finishes loading.
type MapData struct {
	Map      Map
	LoadedAt time.Time
}

type Catalog struct {
	maps        []Map
	byID        map[uint32]int
	byTerritory map[uint32]int
}

func NewCatalog(maps []Map) *Catalog {
	c := &Catalog{
		byID:        make(map[uint32]int, len(maps)),
		byTerritory: make(map[uint32]int, len(maps)),
	}
	for _, m := range maps {
		if m.SizeFactor == 0 {
			m.SizeFactor = 100
		}
		if _, dup := c.byID[m.ID]; dup {
			continue
		}
		c.byID[m.ID] = len(c.maps)
		// first map listed for a territory is its default
		if _, ok := c.byTerritory[m.TerritoryID]; !ok {
			c.byTerritory[m.TerritoryID] = len(c.maps)
		}
		c.maps = append(c.maps, m)
	}
	return c
}

func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read map catalog: %w", err)
	}

	var doc struct {
		Maps []Map `yaml:"maps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse map catalog %s: %w", filename, err)
	}
	return NewCatalog(doc.Maps), nil
}

func (c *Catalog) Map(id uint32) (Map, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Map{}, false
	}
	return c.maps[i], true
}

func (c *Catalog) ForTerritory(territoryID uint32) (Map, bool) {
	i, ok := c.byTerritory[territoryID]
	if !ok {
		return Map{}, false
	}
	return c.maps[i], true
}

func (c *Catalog) Len() int {
	return len(c.maps)
}
