package core

// ParamType enumerates supported parameter value kinds. An empty type marks
// a read-only display value.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
	ParamTypeBool  ParamType = "bool"
)

// Parameter is one named setting with its current value rendered as text.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current settings of a view or sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes a setting a status panel can step up or down.
// Steps and bounds are interpreted according to Type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterSource is what a status panel reads and adjusts.
type ParameterSource interface {
	Parameters() ParameterSnapshot
	ParameterControls() []ParameterControl
	SetIntParameter(key string, value int) bool
	SetFloatParameter(key string, value float64) bool
}
