// Package monitor tracks zone transitions between frames.
package monitor

import (
	"time"
)

type ZoneEvent struct {
	Time time.Time
	From uint32
	To   uint32
}

// ZoneMonitor reports when the territory id changes and keeps the most
// recent transitions for display.
type ZoneMonitor struct {
	Current   uint32
	Events    []ZoneEvent
	MaxEvents int

	seen bool
	now  func() time.Time
}

func NewZoneMonitor() *ZoneMonitor {
	return &ZoneMonitor{
		Events:    make([]ZoneEvent, 0, 10),
		MaxEvents: 10,
		now:       time.Now,
	}
}

// Observe records the territory seen this frame and reports whether it
// differs from the previous one. Territory 0 means the host is unavailable
// and is never reported as a zone.
func (m *ZoneMonitor) Observe(territory uint32) bool {
	if territory == 0 {
		return false
	}
	if m.seen && territory == m.Current {
		return false
	}

	m.addEvent(m.Current, territory)
	m.Current = territory
	m.seen = true
	return true
}

func (m *ZoneMonitor) addEvent(from, to uint32) {
	event := ZoneEvent{
		Time: m.now(),
		From: from,
		To:   to,
	}

	m.Events = append(m.Events, event)
	if len(m.Events) > m.MaxEvents {
		copy(m.Events, m.Events[1:])
		m.Events = m.Events[:m.MaxEvents]
	}
}

// Last returns the most recent transition.
func (m *ZoneMonitor) Last() (ZoneEvent, bool) {
	if len(m.Events) == 0 {
		return ZoneEvent{}, false
	}
	return m.Events[len(m.Events)-1], true
}
