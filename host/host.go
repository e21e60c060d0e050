// Package host is the boundary to the game client. Everything here is a
// per-frame copy of state the game owns; nothing is written back.
package host

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNotAttached = errors.New("not attached to game process")

// Host is the read-only view modules query while drawing. Values returned
// are only valid for the current frame.
type Host interface {
	LocalPlayer() (Entity, bool)
	PartyMembers() []Entity
	Objects() []Entity
	TerritoryID() uint32
	MapID() uint32
	UIState() UIState
}

// UIState is the integer array the game exposes for its UI. The index of the
// camera heading is part of the offsets profile, not a constant here.
type UIState struct {
	Ints               []int32 `yaml:"ints,flow"`
	CameraHeadingIndex int     `yaml:"camera_heading_index"`
}

func (u UIState) CameraHeading() (int32, bool) {
	if u.CameraHeadingIndex < 0 || u.CameraHeadingIndex >= len(u.Ints) {
		return 0, false
	}
	return u.Ints[u.CameraHeadingIndex], true
}

// Snapshot is one frame of host state.
type Snapshot struct {
	Player    *Entity  `yaml:"player,omitempty"`
	Party     []Entity `yaml:"party,omitempty"`
	Table     []Entity `yaml:"objects,omitempty"`
	Territory uint32   `yaml:"territory"`
	Map       uint32   `yaml:"map"`
	UI        UIState  `yaml:"ui"`
}

func (s *Snapshot) LocalPlayer() (Entity, bool) {
	if s.Player == nil || !s.Player.Valid() {
		return Entity{}, false
	}
	return *s.Player, true
}

func (s *Snapshot) PartyMembers() []Entity { return s.Party }
func (s *Snapshot) Objects() []Entity      { return s.Table }
func (s *Snapshot) TerritoryID() uint32    { return s.Territory }
func (s *Snapshot) MapID() uint32          { return s.Map }
func (s *Snapshot) UIState() UIState       { return s.UI }

// Source produces snapshots. Read is called at most once per frame.
type Source interface {
	Read() (Snapshot, error)
}

// Live is the Host handed to modules. Refresh swaps in the next frame.
type Live struct {
	src     Source
	current Snapshot
}

func NewLive(src Source) *Live {
	return &Live{src: src}
}

// Refresh reads the next frame. On error the frame is empty so dependent
// drawing silently skips.
func (l *Live) Refresh() error {
	snap, err := l.src.Read()
	if err != nil {
		l.current = Snapshot{}
		return err
	}
	l.current = snap
	return nil
}

func (l *Live) LocalPlayer() (Entity, bool) { return l.current.LocalPlayer() }
func (l *Live) PartyMembers() []Entity      { return l.current.PartyMembers() }
func (l *Live) Objects() []Entity           { return l.current.Objects() }
func (l *Live) TerritoryID() uint32         { return l.current.TerritoryID() }
func (l *Live) MapID() uint32               { return l.current.MapID() }
func (l *Live) UIState() UIState            { return l.current.UIState() }

// ReplaySource serves a snapshot recorded to YAML, e.g. by tools/hostdump.
type ReplaySource struct {
	snap Snapshot
}

func LoadReplay(filename string) (*ReplaySource, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse replay %s: %w", filename, err)
	}
	return &ReplaySource{snap: snap}, nil
}

func NewReplaySource(snap Snapshot) *ReplaySource {
	return &ReplaySource{snap: snap}
}

func (r *ReplaySource) Read() (Snapshot, error) {
	return r.snap, nil
}
