package model

// AllRegions is the filter selection meaning "no region restriction"
const AllRegions = "all"

// AllRegionsLabel is the label shown for the AllRegions selection
const AllRegionsLabel = "All Regions"

// Region represents a geographic region used as the primary filter dimension
type Region struct {
	ID    string `db:"id" json:"id"`
	Code  string `db:"code" json:"code"`
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
}

// RegionDescriptor is what filter subscribers receive when the selection changes
type RegionDescriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Code  string `json:"code,omitempty"` // Empty for AllRegions
}

// Descriptor returns the filter descriptor for the region
func (r Region) Descriptor() RegionDescriptor {
	return RegionDescriptor{ID: r.ID, Label: r.Name, Code: r.Code}
}

// AllRegionsDescriptor returns the descriptor for the AllRegions selection
func AllRegionsDescriptor() RegionDescriptor {
	return RegionDescriptor{ID: AllRegions, Label: AllRegionsLabel}
}

// IsAll reports whether the descriptor is the AllRegions sentinel
func (d RegionDescriptor) IsAll() bool {
	return d.ID == AllRegions
}

// RegionTotal is the summed order count of one region
type RegionTotal struct {
	RegionID   string `json:"region_id"`
	Code       string `json:"code"`
	Color      string `json:"color"`
	OrderCount int    `json:"order_count"`
}
