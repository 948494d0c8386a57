package track

import "github.com/bsq-ports/tracks-rs/internal/value"

// PropertiesMap holds a Track's ValueProperty slots: the fourteen
// builtin properties get dedicated fields for O(1) dispatch, plus an
// extension map for host-defined property ids.
type PropertiesMap struct {
	Position         *ValueProperty
	Rotation         *ValueProperty
	Scale            *ValueProperty
	LocalRotation    *ValueProperty
	LocalPosition    *ValueProperty
	Dissolve         *ValueProperty
	DissolveArrow    *ValueProperty
	Time             *ValueProperty
	Cuttable         *ValueProperty
	Color            *ValueProperty
	Attentuation     *ValueProperty
	FogOffset        *ValueProperty
	HeightFogStartY  *ValueProperty
	HeightFogHeight  *ValueProperty

	extra map[string]*ValueProperty
}

// NewPropertiesMap builds a map with every builtin slot at its kind's
// empty default.
func NewPropertiesMap() *PropertiesMap {
	return &PropertiesMap{
		Position:        NewValueProperty(value.Vec3),
		Rotation:        NewValueProperty(value.Quaternion),
		Scale:           NewValueProperty(value.Vec3),
		LocalRotation:   NewValueProperty(value.Quaternion),
		LocalPosition:   NewValueProperty(value.Vec3),
		Dissolve:        NewValueProperty(value.Float),
		DissolveArrow:   NewValueProperty(value.Float),
		Time:            NewValueProperty(value.Float),
		Cuttable:        NewValueProperty(value.Float),
		Color:           NewValueProperty(value.Vec4),
		Attentuation:    NewValueProperty(value.Float),
		FogOffset:       NewValueProperty(value.Float),
		HeightFogStartY: NewValueProperty(value.Float),
		HeightFogHeight: NewValueProperty(value.Float),
		extra:           make(map[string]*ValueProperty),
	}
}

// ByName returns the dedicated field for a builtin PropertyName, or
// nil for anything else.
func (m *PropertiesMap) ByName(name PropertyName) *ValueProperty {
	switch name {
	case Position:
		return m.Position
	case Rotation:
		return m.Rotation
	case Scale:
		return m.Scale
	case LocalRotation:
		return m.LocalRotation
	case LocalPosition:
		return m.LocalPosition
	case Dissolve:
		return m.Dissolve
	case DissolveArrow:
		return m.DissolveArrow
	case Time:
		return m.Time
	case Cuttable:
		return m.Cuttable
	case Color:
		return m.Color
	case Attentuation:
		return m.Attentuation
	case FogOffset:
		return m.FogOffset
	case HeightFogStartY:
		return m.HeightFogStartY
	case HeightFogHeight:
		return m.HeightFogHeight
	default:
		return nil
	}
}

// Get resolves id (V1, V2 alias, or an extension id) to its property,
// reporting false if none is registered.
func (m *PropertiesMap) Get(id string) (*ValueProperty, bool) {
	if name, ok := ParsePropertyName(id); ok {
		if p := m.ByName(name); p != nil {
			return p, true
		}
	}
	p, ok := m.extra[id]
	return p, ok
}

// Insert registers prop under id: a builtin name overwrites that
// slot's contents in place, otherwise prop is stored in the extension
// map.
func (m *PropertiesMap) Insert(id string, prop *ValueProperty) {
	if name, ok := ParsePropertyName(id); ok {
		if dst := m.ByName(name); dst != nil {
			*dst = *prop
			return
		}
	}
	m.extra[id] = prop
}

// All returns every property slot keyed by its canonical id (builtin
// names plus extension ids), for hosts that need to enumerate a
// Track's full property set (e.g. internal/httpapi's snapshot
// endpoint) rather than look up one id at a time. Builtin names with
// no value slot (definite_position) are not included.
func (m *PropertiesMap) All() map[string]*ValueProperty {
	out := make(map[string]*ValueProperty, len(allNames)+len(m.extra))
	for name := range allNames {
		if p := m.ByName(name); p != nil {
			out[string(name)] = p
		}
	}
	for id, p := range m.extra {
		out[id] = p
	}
	return out
}

// PathPropertiesMap holds a Track's PathProperty slots: the subset of
// builtin properties that support path (spline) animation, plus an
// extension map.
type PathPropertiesMap struct {
	Position         *PathProperty
	Rotation         *PathProperty
	Scale            *PathProperty
	LocalRotation    *PathProperty
	LocalPosition    *PathProperty
	DefinitePosition *PathProperty
	Dissolve         *PathProperty
	DissolveArrow    *PathProperty
	Cuttable         *PathProperty
	Color            *PathProperty

	extra map[string]*PathProperty
}

// NewPathPropertiesMap builds a map with every builtin path slot
// empty.
func NewPathPropertiesMap() *PathPropertiesMap {
	return &PathPropertiesMap{
		Position:         NewPathProperty(value.Vec3),
		Rotation:         NewPathProperty(value.Quaternion),
		Scale:            NewPathProperty(value.Vec3),
		LocalRotation:    NewPathProperty(value.Quaternion),
		LocalPosition:    NewPathProperty(value.Vec3),
		DefinitePosition: NewPathProperty(value.Vec3),
		Dissolve:         NewPathProperty(value.Float),
		DissolveArrow:    NewPathProperty(value.Float),
		Cuttable:         NewPathProperty(value.Float),
		Color:            NewPathProperty(value.Vec4),
		extra:            make(map[string]*PathProperty),
	}
}

// ByName returns the dedicated field for a builtin PropertyName, or
// nil if that name has no path-property slot (e.g. Time).
func (m *PathPropertiesMap) ByName(name PropertyName) *PathProperty {
	switch name {
	case Position:
		return m.Position
	case Rotation:
		return m.Rotation
	case Scale:
		return m.Scale
	case LocalRotation:
		return m.LocalRotation
	case LocalPosition:
		return m.LocalPosition
	case DefinitePosition:
		return m.DefinitePosition
	case Dissolve:
		return m.Dissolve
	case DissolveArrow:
		return m.DissolveArrow
	case Cuttable:
		return m.Cuttable
	case Color:
		return m.Color
	default:
		return nil
	}
}

// Get resolves id to its path property, reporting false if none is
// registered.
func (m *PathPropertiesMap) Get(id string) (*PathProperty, bool) {
	if name, ok := ParsePropertyName(id); ok {
		if p := m.ByName(name); p != nil {
			return p, true
		}
	}
	p, ok := m.extra[id]
	return p, ok
}

// Insert registers prop under id, overwriting a builtin slot's
// contents in place or storing into the extension map.
func (m *PathPropertiesMap) Insert(id string, prop *PathProperty) {
	if name, ok := ParsePropertyName(id); ok {
		if dst := m.ByName(name); dst != nil {
			*dst = *prop
			return
		}
	}
	m.extra[id] = prop
}
