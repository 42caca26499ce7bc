package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// SearchOrigin is the resolved point a search is centred on.
type SearchOrigin struct {
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
	// Timezone is the IANA zone at the coordinates, empty when unknown.
	Timezone string `json:"timezone,omitempty"`
	// Fallback is set when no coordinates were supplied and the default
	// location was substituted.
	Fallback bool `json:"fallback"`
}
