// trackctl is a small command-line harness that drives a Tracks
// Context end to end without a host process: register a track, parse
// a point definition, start an event, and tick the song clock,
// printing the resulting property values as they change.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/bsq-ports/tracks-rs/internal/coroutine"
	"github.com/bsq-ports/tracks-rs/internal/enginectx"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/track"
	"github.com/bsq-ports/tracks-rs/internal/value"
)

func main() {
	trackName := flag.String("track", "demo", "name of the track to animate")
	property := flag.String("property", "dissolve", "value property to animate")
	points := flag.String("points", "[[0,0],[1,10]]", "JSON point definition array")
	bpm := flag.Float64("bpm", 120, "beats per minute used to convert RawDuration to song time")
	duration := flag.Float64("duration", 4, "event duration in beats")
	steps := flag.Int("steps", 8, "number of ticks to print")
	span := flag.Float64("span", 2, "total song time spanned by the printed ticks")
	flag.Parse()

	log.Println("==============================================")
	log.Println("  trackctl: Tracks engine harness")
	log.Println("==============================================")

	engine := enginectx.New()

	tr := track.NewTrack(*trackName)
	key, err := engine.Tracks().Add(tr)
	if err != nil {
		log.Fatalf("add track: %v", err)
	}
	fmt.Printf("registered track %q\n", *trackName)

	var raw []any
	if err := json.Unmarshal([]byte(*points), &raw); err != nil {
		log.Fatalf("parse points: %v", err)
	}

	def, err := pointdef.Parse(value.Float, raw, engine.Providers())
	if err != nil {
		log.Fatalf("pointdef.Parse: %v", err)
	}
	fmt.Printf("parsed point definition with %d point(s)\n", def.Len())

	data := coroutine.EventData{
		Kind:         coroutine.AnimateValue,
		TrackKey:     key,
		PropertyName: *property,
		PointData:    def,
		RawDuration:  float32(*duration),
		StartTime:    0,
		Easing:       "easeLinear",
	}
	if err := engine.StartEvent(float32(*bpm), 0, data); err != nil {
		log.Fatalf("StartEvent: %v", err)
	}
	fmt.Printf("started animate_value event on %s.%s (bpm=%.1f, duration=%.1f beats)\n", *trackName, *property, *bpm, *duration)

	prop, ok := tr.Properties.Get(*property)
	if !ok {
		log.Fatalf("no such property: %s", *property)
	}

	stepSpan := float32(*span) / float32(*steps)
	for i := 1; i <= *steps; i++ {
		songTime := stepSpan * float32(i)
		if err := engine.Tick(songTime); err != nil {
			log.Fatalf("Tick: %v", err)
		}
		v, ok := prop.Get()
		if !ok {
			fmt.Printf("t=%.3f  %s = <unset>\n", songTime, *property)
			continue
		}
		fmt.Printf("t=%.3f  %s = %v\n", songTime, *property, componentsOf(v))
	}

	fmt.Println("done")
}

func componentsOf(v value.Value) []float32 {
	out := make([]float32, v.Kind().Arity())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}
