package openstreetmap

type LookupAPIResponse struct {
	PlaceId     int64    `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int64    `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Address     Address  `json:"address"`
	Boundingbox []string `json:"boundingbox"`
	Error       string   `json:"error,omitempty"`
}

type Address struct {
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	County        string `json:"county"`
	State         string `json:"state"`
	ISO31662Lvl4  string `json:"ISO3166-2-lvl4"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

// Locality returns the most specific settlement name present.
func (a Address) Locality() string {
	for _, v := range []string{a.City, a.Town, a.Village} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Area returns the most specific sub-city area name present.
func (a Address) Area() string {
	if a.Neighbourhood != "" {
		return a.Neighbourhood
	}
	return a.Suburb
}
