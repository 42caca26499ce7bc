package recommend

import (
	"fmt"
	"net/url"
	"strings"

	"coffee-scout/internal/mood"
	"coffee-scout/internal/providers/overpass"
	"coffee-scout/internal/types"
)

const (
	// SearchRadiusMeters is the radius around the origin that is searched.
	SearchRadiusMeters = 1200
	// CandidateLimit caps how many elements the interpreter returns per
	// output statement, before ranking.
	CandidateLimit = 20
	// QueryTimeoutSeconds is the server-side timeout embedded in the query.
	QueryTimeoutSeconds = 10
)

// Query describes one place search. It is a value; building it does no I/O.
type Query struct {
	Endpoint              string
	Origin                types.Coords
	RadiusMeters          int
	RequireOutdoorSeating bool
	Limit                 int
	TimeoutSeconds        int
}

// QueryBuilder builds queries against a fixed interpreter endpoint.
type QueryBuilder struct {
	Endpoint string
}

// BuildQuery builds a query against the public Overpass endpoint.
func BuildQuery(origin types.Coords, dc DecisionContext) Query {
	return QueryBuilder{Endpoint: overpass.DefaultEndpoint}.Build(origin, dc)
}

// Build returns the cafe query for origin. Social searches only consider
// venues that advertise outdoor seating.
func (b QueryBuilder) Build(origin types.Coords, dc DecisionContext) Query {
	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = overpass.DefaultEndpoint
	}
	return Query{
		Endpoint:              endpoint,
		Origin:                origin,
		RadiusMeters:          SearchRadiusMeters,
		RequireOutdoorSeating: dc.Mood == mood.Social,
		Limit:                 CandidateLimit,
		TimeoutSeconds:        QueryTimeoutSeconds,
	}
}

// QL renders the query in Overpass QL.
func (q Query) QL() string {
	filters := "[amenity=cafe]"
	if q.RequireOutdoorSeating {
		filters += "[outdoor_seating=yes]"
	}
	around := fmt.Sprintf("(around:%d,%s)", q.RadiusMeters, q.Origin.String())

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];", q.TimeoutSeconds)
	fmt.Fprintf(&b, "(node%s%s;way%s%s;);", filters, around, filters, around)
	fmt.Fprintf(&b, "out center %d;", q.Limit)
	return b.String()
}

// Encode returns the form-encoded `data` parameter carrying the QL.
func (q Query) Encode() string {
	return url.Values{"data": {q.QL()}}.Encode()
}

// URL is the full GET request URL for the interpreter.
func (q Query) URL() string {
	return q.Endpoint + "?" + q.Encode()
}
