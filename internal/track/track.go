package track

// GameObjectID is an opaque host-assigned identifier for a game
// object membership; the engine never dereferences it.
type GameObjectID string

// GameObjectCallback is notified when a game object joins (added
// true) or leaves (added false) a Track.
type GameObjectCallback func(obj GameObjectID, added bool)

// Track is a named collection of value and path properties, plus the
// set of game objects currently driven by it.
type Track struct {
	Name           string
	Properties     *PropertiesMap
	PathProperties *PathPropertiesMap

	gameObjects    []GameObjectID
	callbacks      map[int]GameObjectCallback
	nextCallbackID int
}

// NewTrack builds an empty Track with every builtin property slot at
// its default.
func NewTrack(name string) *Track {
	return &Track{
		Name:           name,
		Properties:     NewPropertiesMap(),
		PathProperties: NewPathPropertiesMap(),
		callbacks:      make(map[int]GameObjectCallback),
	}
}

// RegisterProperty installs prop under id.
func (t *Track) RegisterProperty(id string, prop *ValueProperty) {
	t.Properties.Insert(id, prop)
}

// RegisterPathProperty installs prop under id.
func (t *Track) RegisterPathProperty(id string, prop *PathProperty) {
	t.PathProperties.Insert(id, prop)
}

// GameObjects returns the current membership, in registration order.
func (t *Track) GameObjects() []GameObjectID { return t.gameObjects }

// RegisterGameObject adds obj to the track's membership if not
// already present, firing every registered callback with added=true.
func (t *Track) RegisterGameObject(obj GameObjectID) {
	for _, g := range t.gameObjects {
		if g == obj {
			return
		}
	}
	t.gameObjects = append(t.gameObjects, obj)
	for _, cb := range t.callbacks {
		cb(obj, true)
	}
}

// RemoveGameObject drops obj from the track's membership, firing
// every registered callback with added=false.
func (t *Track) RemoveGameObject(obj GameObjectID) {
	out := t.gameObjects[:0]
	removed := false
	for _, g := range t.gameObjects {
		if g == obj {
			removed = true
			continue
		}
		out = append(out, g)
	}
	t.gameObjects = out
	if !removed {
		return
	}
	for _, cb := range t.callbacks {
		cb(obj, false)
	}
}

// RegisterGameObjectCallback adds cb and returns a handle for later
// removal; a closure has no identity to compare, so callers hold the
// monotonic token instead.
func (t *Track) RegisterGameObjectCallback(cb GameObjectCallback) int {
	id := t.nextCallbackID
	t.nextCallbackID++
	t.callbacks[id] = cb
	return id
}

// RemoveGameObjectCallback removes the callback registered under id.
func (t *Track) RemoveGameObjectCallback(id int) {
	delete(t.callbacks, id)
}

// Reset clears every property, game object and callback back to the
// track's just-constructed state.
func (t *Track) Reset() {
	t.Properties = NewPropertiesMap()
	t.PathProperties = NewPathPropertiesMap()
	t.gameObjects = nil
	t.callbacks = make(map[int]GameObjectCallback)
	t.nextCallbackID = 0
}
