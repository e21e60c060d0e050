package monitor

import "testing"

func TestObserve(t *testing.T) {
	m := NewZoneMonitor()

	steps := []struct {
		territory uint32
		changed   bool
	}{
		{0, false},
		{132, true},
		{132, false},
		{0, false},
		{132, false},
		{133, true},
		{132, true},
	}
	for i, s := range steps {
		if got := m.Observe(s.territory); got != s.changed {
			t.Errorf("step %d: Observe(%d) = %v", i, s.territory, got)
		}
	}

	if len(m.Events) != 3 {
		t.Fatalf("events = %+v", m.Events)
	}
	if e, _ := m.Last(); e.From != 133 || e.To != 132 {
		t.Errorf("last = %+v", e)
	}
}

func TestEventsAreBounded(t *testing.T) {
	m := NewZoneMonitor()
	m.MaxEvents = 3

	for territory := uint32(1); territory <= 5; territory++ {
		m.Observe(territory)
	}

	if len(m.Events) != 3 {
		t.Fatalf("got %d events", len(m.Events))
	}
	if m.Events[0].To != 3 || m.Events[2].To != 5 {
		t.Errorf("events = %+v", m.Events)
	}
}
