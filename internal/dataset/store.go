package dataset

import (
	"fmt"

	"ghost-dashboard/pkg/model"
)

// Store answers read-only queries over a validated dataset.
// The dataset is never mutated after construction, so a Store is safe
// for concurrent use.
type Store struct {
	data      Dataset
	regions   map[string]model.Region
	locations map[string]model.Location // Keyed by name
}

// NewStore validates the dataset and freezes a copy of it
func NewStore(ds Dataset) (*Store, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	data := ds.clone()
	s := &Store{
		data:      data,
		regions:   make(map[string]model.Region, len(data.Regions)),
		locations: make(map[string]model.Location, len(data.Locations)),
	}
	for _, r := range data.Regions {
		s.regions[r.ID] = r
	}
	for _, loc := range data.Locations {
		s.locations[loc.Name] = loc
	}
	return s, nil
}

// filterByRegion keeps the items of the selected region in their original order
func filterByRegion[T any](items []T, selection string, regionOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if selection == model.AllRegions || regionOf(item) == selection {
			out = append(out, item)
		}
	}
	return out
}

// LocationsByRegion returns the locations of a region, or all for AllRegions
func (s *Store) LocationsByRegion(selection string) []model.Location {
	return filterByRegion(s.data.Locations, selection, func(l model.Location) string { return l.RegionID })
}

// SegmentationByRegion returns the segmentation rows of a region, or all for AllRegions
func (s *Store) SegmentationByRegion(selection string) []model.SegmentationRecord {
	return filterByRegion(s.data.Segmentation, selection, func(r model.SegmentationRecord) string { return r.RegionID })
}

// OrdersByRegion returns the orders of a region, or all for AllRegions
func (s *Store) OrdersByRegion(selection string) []model.OrderRecord {
	return filterByRegion(s.data.Orders, selection, func(o model.OrderRecord) string { return o.RegionID })
}

// Region looks up a region by id
func (s *Store) Region(id string) (model.Region, error) {
	r, ok := s.regions[id]
	if !ok {
		return model.Region{}, &NotFoundError{Kind: "region", Key: id}
	}
	return r, nil
}

// HasRegion reports whether id is a known region
func (s *Store) HasRegion(id string) bool {
	_, ok := s.regions[id]
	return ok
}

// Regions returns all regions in declaration order
func (s *Store) Regions() []model.Region {
	return append([]model.Region(nil), s.data.Regions...)
}

// Locations returns every location
func (s *Store) Locations() []model.Location {
	return append([]model.Location(nil), s.data.Locations...)
}

// LocationByName looks up a location by its display name
func (s *Store) LocationByName(name string) (model.Location, error) {
	loc, ok := s.locations[name]
	if !ok {
		return model.Location{}, &NotFoundError{Kind: "location", Key: name}
	}
	return loc, nil
}

// LocationDetail resolves a location name into its detail view
func (s *Store) LocationDetail(name string) (model.LocationDetail, error) {
	loc, err := s.LocationByName(name)
	if err != nil {
		return model.LocationDetail{}, err
	}
	region, err := s.Region(loc.RegionID)
	if err != nil {
		return model.LocationDetail{}, fmt.Errorf("location %q: %w", name, err)
	}
	return model.NewLocationDetail(loc, region), nil
}

// Summary returns the headline numbers
func (s *Store) Summary() model.Summary {
	return s.data.Summary
}

// AggregateOrderCount sums the order counts of the given rows
func AggregateOrderCount(records []model.SegmentationRecord) int {
	total := 0
	for _, r := range records {
		total += r.OrderCount
	}
	return total
}

// SegmentTotals sums order counts per segment over the whole dataset.
// Every known segment is present, with 0 when it has no rows.
func (s *Store) SegmentTotals() map[model.SegmentKind]int {
	totals := make(map[model.SegmentKind]int, len(model.SegmentKinds))
	for _, kind := range model.SegmentKinds {
		totals[kind] = 0
	}
	for _, r := range s.data.Segmentation {
		totals[r.Segment] += r.OrderCount
	}
	return totals
}

// RegionTotals sums order counts per region, in region declaration order
func (s *Store) RegionTotals() []model.RegionTotal {
	sums := make(map[string]int, len(s.data.Regions))
	for _, r := range s.data.Segmentation {
		sums[r.RegionID] += r.OrderCount
	}

	totals := make([]model.RegionTotal, 0, len(s.data.Regions))
	for _, r := range s.data.Regions {
		totals = append(totals, model.RegionTotal{
			RegionID:   r.ID,
			Code:       r.Code,
			Color:      r.Color,
			OrderCount: sums[r.ID],
		})
	}
	return totals
}
