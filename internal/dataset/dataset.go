package dataset

import (
	"ghost-dashboard/pkg/model"
)

// Dataset is the complete static data behind the dashboard
type Dataset struct {
	Summary      model.Summary
	Regions      []model.Region // Declaration order is display order
	Locations    []model.Location
	Segmentation []model.SegmentationRecord
	Orders       []model.OrderRecord
}

// Validate checks referential integrity and value ranges of the dataset
func (d Dataset) Validate() error {
	regions := make(map[string]bool, len(d.Regions))
	for i, r := range d.Regions {
		if r.ID == "" {
			return invalid("regions", "region %d has an empty id", i)
		}
		if r.ID == model.AllRegions {
			return invalid("regions", "region id %q is reserved", r.ID)
		}
		if regions[r.ID] {
			return invalid("regions", "duplicate region id %q", r.ID)
		}
		regions[r.ID] = true
	}

	ids := make(map[string]bool, len(d.Locations))
	names := make(map[string]bool, len(d.Locations))
	for _, loc := range d.Locations {
		if ids[loc.ID] {
			return invalid("locations", "duplicate location id %q", loc.ID)
		}
		if names[loc.Name] {
			return invalid("locations", "duplicate location name %q", loc.Name)
		}
		ids[loc.ID] = true
		names[loc.Name] = true

		if !regions[loc.RegionID] {
			return invalid("locations", "location %q references unknown region %q", loc.ID, loc.RegionID)
		}
		if !loc.Category.Valid() {
			return invalid("locations", "location %q has unknown category %q", loc.ID, loc.Category)
		}
	}

	for i, rec := range d.Segmentation {
		if !regions[rec.RegionID] {
			return invalid("segmentation", "row %d references unknown region %q", i, rec.RegionID)
		}
		if !rec.Segment.Valid() {
			return invalid("segmentation", "row %d has unknown segment %q", i, rec.Segment)
		}
		if !rec.Status.Valid() {
			return invalid("segmentation", "row %d has unknown status %q", i, rec.Status)
		}
		if rec.OrderCount < 0 {
			return invalid("segmentation", "row %d has negative order count %d", i, rec.OrderCount)
		}
	}

	orders := make(map[string]bool, len(d.Orders))
	for _, o := range d.Orders {
		if orders[o.ID] {
			return invalid("orders", "duplicate order id %q", o.ID)
		}
		orders[o.ID] = true

		if !regions[o.RegionID] {
			return invalid("orders", "order %q references unknown region %q", o.ID, o.RegionID)
		}
		if !o.Status.Valid() {
			return invalid("orders", "order %q has unknown status %q", o.ID, o.Status)
		}
		if o.Progress < 0 || o.Progress > 100 {
			return invalid("orders", "order %q progress %d outside 0-100", o.ID, o.Progress)
		}
	}

	return nil
}

// clone returns a deep copy so a Store never shares slices with its caller
func (d Dataset) clone() Dataset {
	return Dataset{
		Summary:      d.Summary,
		Regions:      append([]model.Region(nil), d.Regions...),
		Locations:    append([]model.Location(nil), d.Locations...),
		Segmentation: append([]model.SegmentationRecord(nil), d.Segmentation...),
		Orders:       append([]model.OrderRecord(nil), d.Orders...),
	}
}
