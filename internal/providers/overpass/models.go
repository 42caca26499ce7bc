package overpass

import (
	"encoding/json"

	"github.com/paulmach/orb"

	"coffee-scout/internal/geo"
	"coffee-scout/internal/types"
)

// InterpreterAPIResponse is the JSON document returned by the interpreter
// endpoint for `[out:json]` queries.
type InterpreterAPIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Remark    string    `json:"remark,omitempty"`
	Elements  []Element `json:"elements"`
	// Malformed counts elements that could not be decoded and were skipped.
	Malformed int `json:"-"`
}

// UnmarshalJSON decodes elements one at a time so a single bad record is
// skipped instead of failing the whole response.
func (r *InterpreterAPIResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		Version   float64           `json:"version"`
		Generator string            `json:"generator"`
		Remark    string            `json:"remark,omitempty"`
		Elements  []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Version = aux.Version
	r.Generator = aux.Generator
	r.Remark = aux.Remark
	r.Elements = make([]Element, 0, len(aux.Elements))
	r.Malformed = 0
	for _, raw := range aux.Elements {
		var e Element
		if err := json.Unmarshal(raw, &e); err != nil {
			r.Malformed++
			continue
		}
		r.Elements = append(r.Elements, e)
	}
	return nil
}

// Element is one OSM node, way or relation.
type Element struct {
	Type   string     `json:"type"`
	Id     int64      `json:"id"`
	Lat    *float64   `json:"lat,omitempty"`
	Lon    *float64   `json:"lon,omitempty"`
	Center *LatLon    `json:"center,omitempty"`
	Bounds *Bounds    `json:"bounds,omitempty"`
	Tags   types.Tags `json:"tags,omitempty"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Bounds struct {
	MinLat float64 `json:"minlat"`
	MinLon float64 `json:"minlon"`
	MaxLat float64 `json:"maxlat"`
	MaxLon float64 `json:"maxlon"`
}

// Location resolves the element to a single point: its own coordinates for
// nodes, otherwise the centre emitted by `out center`, otherwise the middle
// of its bounding box.
func (e Element) Location() (types.Coords, bool) {
	if e.Lat != nil && e.Lon != nil {
		return types.NewCoords(*e.Lat, *e.Lon), true
	}
	if e.Center != nil {
		return types.NewCoords(e.Center.Lat, e.Center.Lon), true
	}
	if e.Bounds != nil {
		return geo.BoundCenter(orb.Bound{
			Min: orb.Point{e.Bounds.MinLon, e.Bounds.MinLat},
			Max: orb.Point{e.Bounds.MaxLon, e.Bounds.MaxLat},
		}), true
	}
	return types.Coords{}, false
}
