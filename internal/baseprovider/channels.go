// Package baseprovider implements the base provider context: a
// process-scoped mapping from a closed set of named extrinsic
// channels (score, color, transform data) to typed values. The host
// writes; the core reads.
package baseprovider

import "github.com/bsq-ports/tracks-rs/internal/value"

// Channel names are part of the external interface and must not be
// translated or abbreviated.
const (
	ChComboScore                          = "baseCombo"
	ChMultipliedScore                     = "baseMultipliedScore"
	ChImmediateMaxMultipliedScore         = "baseImmediateMaxPossibleMultipliedScore"
	ChModifiedScore                       = "baseModifiedScore"
	ChImmediateMaxModifiedScore           = "baseImmediateMaxPossibleModifiedScore"
	ChRelativeScore                       = "baseRelativeScore"
	ChMultiplier                          = "baseMultiplier"
	ChEnergy                              = "baseEnergy"
	ChSongTime                            = "baseSongTime"
	ChSongLength                          = "baseSongLength"
	ChEnvironmentColor0                   = "baseEnvironmentColor0"
	ChEnvironmentColor0Boost              = "baseEnvironmentColor0Boost"
	ChEnvironmentColor1                   = "baseEnvironmentColor1"
	ChEnvironmentColor1Boost              = "baseEnvironmentColor1Boost"
	ChEnvironmentColorW                   = "baseEnvironmentColorW"
	ChEnvironmentColorWBoost              = "baseEnvironmentColorWBoost"
	ChNote0Color                          = "baseNote0Color"
	ChNote1Color                          = "baseNote1Color"
	ChObstaclesColor                      = "baseObstaclesColor"
	ChSaberAColor                         = "baseSaberAColor"
	ChSaberBColor                         = "baseSaberBColor"
	ChHeadLocalPosition                   = "baseHeadLocalPosition"
	ChHeadLocalRotation                   = "baseHeadLocalRotation"
	ChHeadLocalScale                      = "baseHeadLocalScale"
	ChHeadPosition                        = "baseHeadPosition"
	ChHeadRotation                        = "baseHeadRotation"
	ChLeftHandLocalPosition               = "baseLeftHandLocalPosition"
	ChLeftHandLocalRotation               = "baseLeftHandLocalRotation"
	ChLeftHandLocalScale                  = "baseLeftHandLocalScale"
	ChLeftHandPosition                    = "baseLeftHandPosition"
	ChLeftHandRotation                    = "baseLeftHandRotation"
	ChRightHandLocalPosition              = "baseRightHandLocalPosition"
	ChRightHandLocalRotation              = "baseRightHandLocalRotation"
	ChRightHandLocalScale                 = "baseRightHandLocalScale"
	ChRightHandPosition                   = "baseRightHandPosition"
	ChRightHandRotation                   = "baseRightHandRotation"
)

var channelKinds = map[string]value.Kind{
	ChComboScore:                  value.Float,
	ChMultipliedScore:             value.Float,
	ChImmediateMaxMultipliedScore: value.Float,
	ChModifiedScore:               value.Float,
	ChImmediateMaxModifiedScore:   value.Float,
	ChRelativeScore:               value.Float,
	ChMultiplier:                  value.Float,
	ChEnergy:                      value.Float,
	ChSongTime:                    value.Float,
	ChSongLength:                  value.Float,

	ChEnvironmentColor0:      value.Vec4,
	ChEnvironmentColor0Boost: value.Vec4,
	ChEnvironmentColor1:      value.Vec4,
	ChEnvironmentColor1Boost: value.Vec4,
	ChEnvironmentColorW:      value.Vec4,
	ChEnvironmentColorWBoost: value.Vec4,
	ChNote0Color:             value.Vec4,
	ChNote1Color:             value.Vec4,
	ChObstaclesColor:         value.Vec4,
	ChSaberAColor:            value.Vec4,
	ChSaberBColor:            value.Vec4,

	ChHeadLocalPosition:      value.Vec3,
	ChHeadLocalRotation:      value.Quaternion,
	ChHeadLocalScale:         value.Vec3,
	ChHeadPosition:           value.Vec3,
	ChHeadRotation:           value.Quaternion,
	ChLeftHandLocalPosition:  value.Vec3,
	ChLeftHandLocalRotation:  value.Quaternion,
	ChLeftHandLocalScale:     value.Vec3,
	ChLeftHandPosition:       value.Vec3,
	ChLeftHandRotation:       value.Quaternion,
	ChRightHandLocalPosition: value.Vec3,
	ChRightHandLocalRotation: value.Quaternion,
	ChRightHandLocalScale:    value.Vec3,
	ChRightHandPosition:      value.Vec3,
	ChRightHandRotation:      value.Quaternion,
}

// KnownChannels lists every declared channel name, for validation and
// documentation purposes.
func KnownChannels() []string {
	names := make([]string, 0, len(channelKinds))
	for name := range channelKinds {
		names = append(names, name)
	}
	return names
}
