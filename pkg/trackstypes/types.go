// Package trackstypes holds the JSON-serializable DTOs shared by the
// HTTP inspection surface (internal/httpapi), the websocket broadcast
// hub (internal/livefeed), and the Redis snapshot store
// (internal/snapshot): the wire shapes a host or debug client
// exchanges with the engine, as distinct from the engine's own
// internal value.Value/track.Track types.
package trackstypes

import (
	"fmt"

	"github.com/bsq-ports/tracks-rs/internal/value"
)

// ValueDTO is the wire form of a value.Value: an explicit kind tag
// plus its flat float components, so a debug client can render any of
// float/vec3/vec4/quaternion without special-casing.
type ValueDTO struct {
	Kind       string    `json:"kind"`
	Components []float32 `json:"components"`
}

// FromValue converts an engine Base Value to its wire form.
func FromValue(v value.Value) ValueDTO {
	return ValueDTO{Kind: v.Kind().String(), Components: append([]float32(nil), v.Slice()...)}
}

// ToValue converts a wire Base Value back to an engine Base Value,
// rejecting a kind name or component count that doesn't match a known
// Base Value shape.
func (d ValueDTO) ToValue() (value.Value, error) {
	kind, ok := kindByName[d.Kind]
	if !ok {
		return value.Value{}, fmt.Errorf("trackstypes: unknown value kind %q", d.Kind)
	}
	if len(d.Components) != kind.Arity() {
		return value.Value{}, fmt.Errorf("trackstypes: kind %q wants %d components, got %d", d.Kind, kind.Arity(), len(d.Components))
	}
	switch kind {
	case value.Float:
		return value.Float32(d.Components[0]), nil
	case value.Vec3:
		return value.NewVec3(d.Components[0], d.Components[1], d.Components[2]), nil
	case value.Vec4:
		return value.NewVec4(d.Components[0], d.Components[1], d.Components[2], d.Components[3]), nil
	case value.Quaternion:
		return value.NewQuaternion(d.Components[0], d.Components[1], d.Components[2], d.Components[3]), nil
	default:
		return value.Value{}, fmt.Errorf("trackstypes: unhandled kind %q", d.Kind)
	}
}

var kindByName = map[string]value.Kind{
	"float":      value.Float,
	"vec3":       value.Vec3,
	"vec4":       value.Vec4,
	"quaternion": value.Quaternion,
}

// ParseKind resolves a wire kind name to a value.Kind, for callers
// (internal/httpapi) that need the kind ahead of a full ValueDTO, e.g.
// to parse a point-definition tree of a given kind.
func ParseKind(name string) (value.Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// PropertyDTO is one Track property slot's wire snapshot: an empty
// slot reports Value == nil rather than a zeroed ValueDTO.
type PropertyDTO struct {
	Name        string    `json:"name"`
	Value       *ValueDTO `json:"value,omitempty"`
	LastUpdated int64     `json:"last_updated_unix_ms"`
}

// TrackSnapshot is the GET /tracks/{name} response body: every
// builtin and extension value-property slot on one Track, as of the
// moment of the request.
type TrackSnapshot struct {
	Name       string        `json:"name"`
	Properties []PropertyDTO `json:"properties"`
}

// EventRequest is the POST /tracks/{name}/events request body: the
// wire form of coroutine.EventData, with the raw parsed-tree point
// definition carried as a generic JSON value for
// internal/pointdef.Parse to consume.
type EventRequest struct {
	Kind        string  `json:"kind"` // "animate_value" | "assign_path"
	Property    string  `json:"property"`
	ValueKind   string  `json:"value_kind"` // "float" | "vec3" | "vec4" | "quaternion"
	RawDuration float32 `json:"raw_duration_beats"`
	StartTime   float32 `json:"start_time"`
	Easing      string  `json:"easing"`
	Repeat      uint32  `json:"repeat"`
	Points      []any   `json:"points,omitempty"`
}

// TickRequest is the POST /tick request body.
type TickRequest struct {
	BPM      float32 `json:"bpm"`
	SongTime float32 `json:"song_time"`
}

// ChannelDTO is the GET/PUT /channels/{name} request and response
// body for reading or writing one Base Provider channel.
type ChannelDTO struct {
	Name  string   `json:"name"`
	Value ValueDTO `json:"value"`
}

// ErrorResponse is the uniform error body for every httpapi
// endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
