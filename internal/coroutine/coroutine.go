// Package coroutine implements the cooperative scheduler that drives
// "animate this property over N beats" and "assign this path
// animation" events tick by tick against song time. Cancellation is
// by structural equality on (track, EventKind, property name): at
// most one task may be live per triple, and starting a new one
// replaces the old.
package coroutine

import (
	"github.com/bsq-ports/tracks-rs/internal/baseprovider"
	"github.com/bsq-ports/tracks-rs/internal/easing"
	"github.com/bsq-ports/tracks-rs/internal/enginelog"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/track"
)

// EventKind distinguishes the two event shapes a coroutine can
// drive.
type EventKind int

const (
	// AnimateValue writes PointData.Interpolate(time) straight into a
	// ValueProperty every tick.
	AnimateValue EventKind = iota
	// AssignPath installs PointData as the new Current of a
	// PathProperty's Interpolation and drives its Blend.
	AssignPath
)

// EventData is the input to StartEventCoroutine: one event group as
// parsed from a host event.
type EventData struct {
	Kind         EventKind
	TrackKey     track.Key
	PropertyName string
	// PointData is nil when the event carries no point data: the
	// target property is cleared and no task is scheduled.
	PointData *pointdef.Definition

	RawDuration float32 // beats; duration_song_time = 60*RawDuration/bpm
	StartTime   float32 // song time the event begins at
	Easing      string
	Repeat      uint32
}

// task is one scheduled coroutine, tracked until it yields Break.
type task struct {
	kind         EventKind
	trackKey     track.Key
	propertyName string
	pointData    *pointdef.Definition

	repeat    uint32
	duration  float32
	startTime float32
	easing    string
}

// Manager owns every live coroutine task and advances them against
// song time.
type Manager struct {
	tasks []*task
}

// NewManager builds an empty Manager.
func NewManager() *Manager { return &Manager{} }

// result of one task pulse: yield means "keep scheduling", brk means
// "this pulse finished its pass".
type result int

const (
	yield result = iota
	brk
)

// StartEventCoroutine schedules event, first cancelling any
// in-flight task on the same (trackKey, Kind, PropertyName) triple,
// then performing the event's immediate pulse and, if it isn't
// already complete, enqueuing it for PollEvents.
func (m *Manager) StartEventCoroutine(bpm float32, songTime float32, ctx *baseprovider.Context, holder *track.Holder, data EventData) error {
	m.cancel(data.TrackKey, data.Kind, data.PropertyName)

	tr, ok := holder.Get(data.TrackKey)
	if !ok {
		enginelog.StaleHandle("start_event_coroutine")
		return nil
	}

	duration := (60.0 * data.RawDuration) / bpm
	noDuration := duration == 0 || data.StartTime+(duration*(float32(data.Repeat)+1)) < songTime

	if data.PointData == nil {
		clearProperty(tr, data.Kind, data.PropertyName)
		return nil
	}

	hasBase := data.PointData.HasBaseProvider()

	switch data.Kind {
	case AnimateValue:
		prop, ok := tr.Properties.Get(data.PropertyName)
		if !ok {
			enginelog.StaleHandle("start_event_coroutine animate_value property lookup")
			return nil
		}

		if noDuration || (data.PointData.Len() <= 1 && !hasBase) {
			_, err := setPropertyValue(data.PointData, prop, tr, 1.0, ctx)
			return err
		}

		repeat := data.Repeat
		startTime := data.StartTime
		res, err := animateTrack(data.PointData, prop, tr, duration, startTime, songTime, data.Easing, hasBase, ctx)
		if err != nil {
			return err
		}
		if res == brk {
			if repeat == 0 {
				return nil
			}
			repeat--
			startTime += duration
		}

		m.tasks = append(m.tasks, &task{
			kind: AnimateValue, trackKey: data.TrackKey, propertyName: data.PropertyName,
			pointData: data.PointData, repeat: repeat, duration: duration,
			startTime: startTime, easing: data.Easing,
		})

	case AssignPath:
		pathProp, ok := tr.PathProperties.Get(data.PropertyName)
		if !ok {
			enginelog.StaleHandle("start_event_coroutine assign_path property lookup")
			return nil
		}
		pathProp.Interp.Init(data.PointData)

		if noDuration {
			pathProp.Interp.Finish()
			return nil
		}

		if assignPathAnimation(pathProp, duration, data.StartTime, data.Easing, songTime) == brk {
			return nil
		}

		m.tasks = append(m.tasks, &task{
			kind: AssignPath, trackKey: data.TrackKey, propertyName: data.PropertyName,
			pointData: data.PointData, repeat: data.Repeat, duration: duration,
			startTime: data.StartTime, easing: data.Easing,
		})
	}

	return nil
}

// cancel drops any scheduled task matching (trackKey, kind,
// propertyName). Survivors keep their relative order.
func (m *Manager) cancel(trackKey track.Key, kind EventKind, propertyName string) {
	out := m.tasks[:0]
	for _, t := range m.tasks {
		if t.trackKey == trackKey && t.kind == kind && t.propertyName == propertyName {
			continue
		}
		out = append(out, t)
	}
	m.tasks = out
}

// PollEvents advances every scheduled task by one tick at songTime,
// dropping the ones that complete.
func (m *Manager) PollEvents(songTime float32, ctx *baseprovider.Context, holder *track.Holder) error {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		res, err := m.pollOne(songTime, ctx, holder, t)
		if err != nil {
			return err
		}
		if res == yield {
			live = append(live, t)
		}
	}
	m.tasks = live
	return nil
}

func (m *Manager) pollOne(songTime float32, ctx *baseprovider.Context, holder *track.Holder, t *task) (result, error) {
	tr, ok := holder.Get(t.trackKey)
	if !ok {
		enginelog.StaleHandle("poll_events")
		return brk, nil
	}

	hasBase := t.pointData.HasBaseProvider()

	switch t.kind {
	case AnimateValue:
		prop, ok := tr.Properties.Get(t.propertyName)
		if !ok {
			enginelog.StaleHandle("poll_events animate_value property lookup")
			return brk, nil
		}

		res, err := animateTrack(t.pointData, prop, tr, t.duration, t.startTime, songTime, t.easing, hasBase, ctx)
		if err != nil {
			return brk, err
		}

		// Repeating tasks restart their window instead of completing.
		if res == brk && t.repeat > 0 {
			t.repeat--
			t.startTime += t.duration
			return yield, nil
		}
		return res, nil

	case AssignPath:
		pathProp, ok := tr.PathProperties.Get(t.propertyName)
		if !ok {
			enginelog.StaleHandle("poll_events assign_path property lookup")
			return brk, nil
		}
		return assignPathAnimation(pathProp, t.duration, t.startTime, t.easing, songTime), nil
	}
	return brk, nil
}

// animateTrack evaluates points at the eased progress through
// [startTime, startTime+duration], writes it into property, and
// reports whether the pulse is done: non-lazy (base-provider-backed)
// point data must keep yielding every tick even once it reaches its
// last point, since the live channel can still move.
func animateTrack(points *pointdef.Definition, property *track.ValueProperty, tr *track.Track, duration, startTime, songTime float32, easingName string, nonLazy bool, ctx *baseprovider.Context) (result, error) {
	elapsed := songTime - startTime

	normalized := elapsed / duration
	if normalized > 1 {
		normalized = 1
	}
	t := easing.Apply(easingName, normalized)

	onLast, err := setPropertyValue(points, property, tr, t, ctx)
	if err != nil {
		return brk, err
	}
	skip := !nonLazy && onLast

	if elapsed < duration && !skip {
		return yield, nil
	}
	return brk, nil
}

// assignPathAnimation advances interpolation's Blend and reports
// whether the cross-fade has finished.
func assignPathAnimation(prop *track.PathProperty, duration, startTime float32, easingName string, songTime float32) result {
	elapsed := songTime - startTime

	normalized := elapsed / duration
	if normalized > 1 {
		normalized = 1
	}
	prop.Interp.SetBlend(easing.Apply(easingName, normalized))

	if elapsed < duration {
		return yield
	}
	prop.Interp.Finish()
	return brk
}

// setPropertyValue writes points.Interpolate(time) into property,
// skipping the write (but still reporting onLast) when the value is
// unchanged.
func setPropertyValue(points *pointdef.Definition, property *track.ValueProperty, tr *track.Track, time float32, ctx *baseprovider.Context) (bool, error) {
	v, onLast, err := points.Interpolate(time, ctx)
	if err != nil {
		return false, err
	}

	if cur, ok := property.Get(); ok && cur.Equal(v) {
		return onLast, nil
	}

	if err := property.Set(v); err != nil {
		return false, err
	}
	return onLast, nil
}

// clearProperty nulls out the addressed property for a
// missing-point-data event.
func clearProperty(tr *track.Track, kind EventKind, propertyName string) {
	switch kind {
	case AnimateValue:
		if prop, ok := tr.Properties.Get(propertyName); ok {
			prop.Clear()
		}
	case AssignPath:
		if prop, ok := tr.PathProperties.Get(propertyName); ok {
			prop.Interp.Init(nil)
		}
	}
}
