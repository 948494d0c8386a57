// Package enginectx implements the tracks context: the composition
// root that owns one tracks holder, one coroutine manager, one base
// provider context, and the shared (name, kind) -> point definition
// cache so a single parsed definition can back many concurrent tasks
// and re-starts without copying. The cache key carries the kind
// alongside the name to keep, say, a float "glow" and a vec3 "glow"
// definition distinct.
package enginectx

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/coroutine"
	"github.com/bsq-ports/tracks-rs/internal/engineerr"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/track"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

type definitionKey struct {
	name string
	kind value.Kind
}

// Context is the engine's top-level handle: everything a host needs
// to register tracks, cache point definitions, start coroutine
// events, and tick the song clock lives behind this one struct.
type Context struct {
	tracks      *track.Holder
	coroutines  *coroutine.Manager
	providers   *baseprovider.Context
	definitions map[definitionKey]*pointdef.Definition
}

// New default-constructs a Context with an empty tracks holder, an
// empty coroutine manager, and a base provider context at every
// channel's declared default.
func New() *Context {
	return &Context{
		tracks:      track.NewHolder(),
		coroutines:  coroutine.NewManager(),
		providers:   baseprovider.New(),
		definitions: make(map[definitionKey]*pointdef.Definition),
	}
}

// Tracks exposes the owned Tracks Holder.
func (c *Context) Tracks() *track.Holder { return c.tracks }

// Coroutines exposes the owned Coroutine Manager.
func (c *Context) Coroutines() *coroutine.Manager { return c.coroutines }

// Providers exposes the owned Base Provider Context.
func (c *Context) Providers() *baseprovider.Context { return c.providers }

// AddPointDefinition shares def under (name, kind). A second
// definition registered under the same key is a fatal duplicate-name
// usage error; callers that mean to replace a definition must route
// through the coroutine manager's cancel-and-restart path instead,
// the same as any other track mutation.
func (c *Context) AddPointDefinition(name string, kind value.Kind, def *pointdef.Definition) error {
	key := definitionKey{name: name, kind: kind}
	if _, exists := c.definitions[key]; exists {
		return engineerr.DuplicateName("point definition", name)
	}
	c.definitions[key] = def
	return nil
}

// GetPointDefinition resolves a previously registered definition,
// reporting false if none was registered under (name, kind).
func (c *Context) GetPointDefinition(name string, kind value.Kind) (*pointdef.Definition, bool) {
	def, ok := c.definitions[definitionKey{name: name, kind: kind}]
	return def, ok
}

// Tick advances every live coroutine task by one pulse at songTime,
// the one per-frame call a host makes after writing whatever base
// provider channels changed this frame.
func (c *Context) Tick(songTime float32) error {
	return c.coroutines.PollEvents(songTime, c.providers, c.tracks)
}

// StartEvent schedules data against the current song clock,
// forwarding straight to the owned coroutine manager.
func (c *Context) StartEvent(bpm, songTime float32, data coroutine.EventData) error {
	return c.coroutines.StartEventCoroutine(bpm, songTime, c.providers, c.tracks, data)
}
