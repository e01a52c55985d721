package overpass

// InterpreterResponse is the JSON envelope returned by the Overpass interpreter
type InterpreterResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Remark    string    `json:"remark,omitempty"`
	Elements  []Element `json:"elements" validate:"required,dive"`
}

// Element is a node, way or relation. Ways and relations carry their
// position in Center when queried with "out center".
type Element struct {
	Type   string            `json:"type" validate:"required,oneof=node way relation"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon    *float64          `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Coordinates returns the element's position, preferring its own lat/lon
// over the computed center. ok is false when neither is present.
func (e Element) Coordinates() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}

// Tag returns the value of key, or "" when the element has no such tag
func (e Element) Tag(key string) string {
	return e.Tags[key]
}

// TagFilter selects elements whose Key tag has one of Values
type TagFilter struct {
	Key    string
	Values []string
}

// Matches reports whether the element carries one of the filter's values
func (f TagFilter) Matches(e Element) (string, bool) {
	v, ok := e.Tags[f.Key]
	if !ok {
		return "", false
	}
	for _, want := range f.Values {
		if v == want {
			return v, true
		}
	}
	return "", false
}
