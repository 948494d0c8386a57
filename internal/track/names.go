package track

// PropertyName is one of the builtin, dedicated-slot property names,
// distinct from an arbitrary extension property id.
type PropertyName string

const (
	Position         PropertyName = "position"
	Rotation         PropertyName = "rotation"
	Scale            PropertyName = "scale"
	LocalRotation    PropertyName = "local_rotation"
	LocalPosition    PropertyName = "local_position"
	DefinitePosition PropertyName = "definite_position"
	Dissolve         PropertyName = "dissolve"
	DissolveArrow    PropertyName = "dissolve_arrow"
	Time             PropertyName = "time"
	Cuttable         PropertyName = "cuttable"
	Color            PropertyName = "color"
	Attentuation     PropertyName = "attentuation"
	FogOffset        PropertyName = "fog_offset"
	HeightFogStartY  PropertyName = "height_fog_start_y"
	HeightFogHeight  PropertyName = "height_fog_height"
)

// v2Aliases maps the legacy V2 (underscore-prefixed camelCase)
// property ids to their canonical names.
var v2Aliases = map[string]PropertyName{
	"_position":         Position,
	"_localPosition":    LocalPosition,
	"_rotation":         Rotation,
	"_localRotation":    LocalRotation,
	"_scale":            Scale,
	"_definitePosition": DefinitePosition,
	"_dissolve":         Dissolve,
	"_dissolveArrow":    DissolveArrow,
	"_time":             Time,
	"_cuttable":         Cuttable,
	"_color":            Color,
	"_attenuation":      Attentuation,
	"_fogOffset":        FogOffset,
	"_heightFogStartY":  HeightFogStartY,
	"_heightFogHeight":  HeightFogHeight,
}

var allNames = map[PropertyName]bool{
	Position: true, Rotation: true, Scale: true, LocalRotation: true,
	LocalPosition: true, DefinitePosition: true, Dissolve: true,
	DissolveArrow: true, Time: true, Cuttable: true, Color: true,
	Attentuation: true, FogOffset: true, HeightFogStartY: true,
	HeightFogHeight: true,
}

// ParsePropertyName resolves a V1 or V2 property id to its canonical
// PropertyName, reporting false for an unrecognized (extension) id.
func ParsePropertyName(id string) (PropertyName, bool) {
	if allNames[PropertyName(id)] {
		return PropertyName(id), true
	}
	if canon, ok := v2Aliases[id]; ok {
		return canon, true
	}
	return "", false
}

func (n PropertyName) String() string { return string(n) }
