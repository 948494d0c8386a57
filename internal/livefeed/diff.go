package livefeed

import (
	"time"

	"github.com/bsq-ports/tracks-rs/internal/track"
	"github.com/bsq-ports/tracks-rs/pkg/trackstypes"
)

// CollectDiffs walks every live track in holder and returns the value
// properties whose LastUpdated is after since: the set a host should
// broadcast after a tick that started at since. The scheduler skips
// writes that don't change a property's value, so LastUpdated only
// moves on a real change.
func CollectDiffs(holder *track.Holder, since time.Time) []PropertyDiff {
	var diffs []PropertyDiff
	for name, tr := range holder.All() {
		for propID, prop := range tr.Properties.All() {
			if !prop.LastUpdated().After(since) {
				continue
			}
			v, ok := prop.Get()
			if !ok {
				continue
			}
			dto := trackstypes.FromValue(v)
			diffs = append(diffs, PropertyDiff{
				Track:       name,
				Property:    propID,
				Kind:        dto.Kind,
				Components:  dto.Components,
				LastUpdated: prop.LastUpdated().UnixMilli(),
			})
		}
	}
	return diffs
}
