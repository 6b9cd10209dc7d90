package model

import "strings"

// LocationCategory classifies a location
type LocationCategory string

const (
	CategoryHeadquarters LocationCategory = "hq"
	CategoryBranch       LocationCategory = "branch"
)

// Valid reports whether the category is a known value
func (c LocationCategory) Valid() bool {
	return c == CategoryHeadquarters || c == CategoryBranch
}

// MapPosition places a marker on the map, as CSS percentages
type MapPosition struct {
	Left string `json:"left"`
	Top  string `json:"top"`
}

// Location is a city with a map marker
type Location struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"` // Unique, also the marker key
	RegionID string           `json:"region_id"`
	Category LocationCategory `json:"category"`
	Position MapPosition      `json:"position"`
}

// LocationDetail is returned when a marker is clicked
type LocationDetail struct {
	Name       string      `json:"name"`
	RegionID   string      `json:"region_id"`
	RegionCode string      `json:"region_code"`
	RegionName string      `json:"region_name"`
	Category   string      `json:"category"`
	Position   MapPosition `json:"position"`
}

// NewLocationDetail builds the detail view of a location within its region
func NewLocationDetail(loc Location, region Region) LocationDetail {
	return LocationDetail{
		Name:       loc.Name,
		RegionID:   region.ID,
		RegionCode: region.Code,
		RegionName: region.Name,
		Category:   strings.ToUpper(string(loc.Category)),
		Position:   loc.Position,
	}
}
