package host

import (
	"fmt"

	"mappy/config"
	"mappy/geom"
	"mappy/memory"
)

// MemorySource decodes snapshots straight from game memory.
type MemorySource struct {
	r       memory.Reader
	base    uint64
	offsets config.Offsets

	table []byte
	obj   []byte
}

func NewMemorySource(r memory.Reader, moduleBase uint64, offsets config.Offsets) *MemorySource {
	return &MemorySource{
		r:       r,
		base:    moduleBase,
		offsets: offsets,
		table:   make([]byte, offsets.ObjectTableSize*8),
		obj:     make([]byte, offsets.Object.ReadSize),
	}
}

func (m *MemorySource) Read() (Snapshot, error) {
	var snap Snapshot

	if err := m.r.ReadAt(m.base+m.offsets.ObjectTable, m.table); err != nil {
		return snap, fmt.Errorf("object table: %w", err)
	}

	byID := make(map[uint32]int)
	for i := 0; i < m.offsets.ObjectTableSize; i++ {
		ptr := memory.BytesToUint64(m.table[i*8:])
		if !memory.IsValidPtr(ptr) {
			continue
		}
		e, ok := m.readObject(ptr)
		if !ok {
			continue
		}
		// slot 0 is always the local player
		if i == 0 && e.Kind == KindPlayer {
			player := e
			snap.Player = &player
		}
		byID[e.ID] = len(snap.Table)
		snap.Table = append(snap.Table, e)
	}

	snap.Party = m.readParty(snap.Table, byID)

	if v, err := memory.ReadU32(m.r, m.base+m.offsets.Territory); err == nil {
		snap.Territory = v
	}
	if v, err := memory.ReadU32(m.r, m.base+m.offsets.MapID); err == nil {
		snap.Map = v
	}

	snap.UI = UIState{CameraHeadingIndex: m.offsets.CameraSlot}
	if ints, err := m.readCameraArray(); err == nil {
		snap.UI.Ints = ints
	}

	return snap, nil
}

func (m *MemorySource) readObject(ptr uint64) (Entity, bool) {
	if err := m.r.ReadAt(ptr, m.obj); err != nil {
		return Entity{}, false
	}
	o := m.offsets.Object
	e := Entity{
		ID:      memory.BytesToUint32(m.obj[o.ID:]),
		OwnerID: memory.BytesToUint32(m.obj[o.Owner:]),
		Kind:    ObjectKind(m.obj[o.Kind]),
		SubKind: BattleNpcSubKind(m.obj[o.SubKind]),
		Name:    memory.CString(m.obj[o.Name : o.Name+uint64(o.NameLen)]),
		Position: geom.Vec3{
			X: memory.BytesToFloat32(m.obj[o.Position:]),
			Y: memory.BytesToFloat32(m.obj[o.Position+4:]),
			Z: memory.BytesToFloat32(m.obj[o.Position+8:]),
		},
		Rotation: memory.BytesToFloat32(m.obj[o.Rotation:]),
	}
	if !e.Valid() {
		return Entity{}, false
	}
	if !memory.IsValidCoord(e.Position.X) || !memory.IsValidCoord(e.Position.Y) || !memory.IsValidCoord(e.Position.Z) {
		return Entity{}, false
	}
	return e, true
}

// readParty resolves party member object ids against the object table.
// Members in other zones are not in the table and are skipped.
func (m *MemorySource) readParty(objects []Entity, byID map[uint32]int) []Entity {
	list := m.base + m.offsets.PartyList
	count, err := memory.ReadU32(m.r, list+m.offsets.PartyCount)
	if err != nil || count == 0 {
		return nil
	}
	if int(count) > m.offsets.PartyMaxMembers {
		count = uint32(m.offsets.PartyMaxMembers)
	}

	party := make([]Entity, 0, count)
	for i := uint64(0); i < uint64(count); i++ {
		id, err := memory.ReadU32(m.r, list+i*m.offsets.PartyMemberSize+m.offsets.PartyObjectID)
		if err != nil {
			continue
		}
		if idx, ok := byID[id]; ok {
			party = append(party, objects[idx])
		}
	}
	return party
}

func (m *MemorySource) readCameraArray() ([]int32, error) {
	o := m.offsets
	stage, err := memory.ReadPtr(m.r, m.base+o.AtkStage)
	if err != nil {
		return nil, err
	}
	holder, err := memory.ReadPtr(m.r, stage+o.AtkArrayHolder)
	if err != nil {
		return nil, err
	}
	arrays, err := memory.ReadPtr(m.r, holder+o.NumberArrays)
	if err != nil {
		return nil, err
	}
	arr, err := memory.ReadPtr(m.r, arrays+uint64(o.CameraArray)*8)
	if err != nil {
		return nil, err
	}
	size, err := memory.ReadU32(m.r, arr+o.IntArraySize)
	if err != nil {
		return nil, err
	}
	if size == 0 || size > config.UI_INT_ARRAY_MAX {
		return nil, fmt.Errorf("number array %d: size %d: %w", o.CameraArray, size, memory.ErrReadFailed)
	}
	ints, err := memory.ReadPtr(m.r, arr+o.IntArray)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size*4)
	if err := m.r.ReadAt(ints, buf); err != nil {
		return nil, err
	}
	out := make([]int32, size)
	for i := range out {
		out[i] = memory.BytesToInt32(buf[i*4:])
	}
	return out, nil
}
