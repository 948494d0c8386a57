package baseprovider

import (
	"strings"

	"github.com/bsq-ports/tracks-rs/internal/engineerr"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

// Context is the process-scoped base provider context. It holds one
// value per declared channel, host-write, core-read.
type Context struct {
	values map[string]value.Value
}

// New constructs a Context with every channel at its kind's default
// value (0 for float/vec3/vec4, identity for quaternion).
func New() *Context {
	c := &Context{values: make(map[string]value.Value, len(channelKinds))}
	for name, kind := range channelKinds {
		c.values[name] = value.Default(kind)
	}
	return c
}

// Kind reports a channel's declared kind. Unknown channel is a fatal
// usage error.
func (c *Context) Kind(channel string) (value.Kind, error) {
	k, ok := channelKinds[channel]
	if !ok {
		return 0, engineerr.UnknownChannel(channel)
	}
	return k, nil
}

// Get returns a copy of a channel's current typed value.
func (c *Context) Get(channel string) (value.Value, error) {
	v, ok := c.values[channel]
	if !ok {
		return value.Value{}, engineerr.UnknownChannel(channel)
	}
	return v, nil
}

// Set type-checks and writes a Base Value into a channel.
func (c *Context) Set(channel string, v value.Value) error {
	kind, ok := channelKinds[channel]
	if !ok {
		return engineerr.UnknownChannel(channel)
	}
	if v.Kind() != kind {
		return engineerr.KindMismatch(channel, kind, v.Kind())
	}
	c.values[channel] = v
	return nil
}

// Slice returns a flat float view of a copy of a channel's current
// value; it does not alias the context's storage, so later Set calls
// are not reflected in it.
func (c *Context) Slice(channel string) ([]float32, error) {
	v, err := c.Get(channel)
	if err != nil {
		return nil, err
	}
	return v.Slice(), nil
}

// ValueProviderSpec describes how to build a value provider for a
// dotted channel reference (e.g. "baseHeadRotation.something"): the
// base channel name, and whether it must be wrapped in a
// QuaternionProvider because the channel itself is a quaternion
// (downstream modifier math expects Euler degrees).
type ValueProviderSpec struct {
	ChannelName    string
	WrapQuaternion bool
}

// ResolveValueProvider parses a dotted channel reference and reports
// how the caller (package valueprovider, to avoid an import cycle)
// should construct the provider.
func ResolveValueProvider(name string) (ValueProviderSpec, error) {
	baseName := name
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		baseName = name[:idx]
	}
	kind, ok := channelKinds[baseName]
	if !ok {
		return ValueProviderSpec{}, engineerr.UnknownChannel(baseName)
	}
	return ValueProviderSpec{ChannelName: baseName, WrapQuaternion: kind == value.Quaternion}, nil
}
