package render

import (
	"ghost-dashboard/internal/filter"
	"ghost-dashboard/pkg/model"
)

// Source is the read-only data the renderers project from
type Source interface {
	RegionLookup
	SegmentationByRegion(selection string) []model.SegmentationRecord
	OrdersByRegion(selection string) []model.OrderRecord
	LocationsByRegion(selection string) []model.Location
	Locations() []model.Location
	Summary() model.Summary
}

// Renderer redraws one view for a selection
type Renderer interface {
	Render(selection string) error
}

// Listener adapts a renderer to a filter subscription
func Listener(r Renderer) filter.Listener {
	return func(d model.RegionDescriptor) error {
		return r.Render(d.ID)
	}
}

// SegmentTable renders the segmentation table and its grand total
type SegmentTable struct {
	source  Source
	surface Surface
}

// NewSegmentTable creates a segmentation table renderer
func NewSegmentTable(source Source, surface Surface) *SegmentTable {
	return &SegmentTable{source: source, surface: surface}
}

// Render draws the rows of the selected region
func (r *SegmentTable) Render(selection string) error {
	rows, total, err := SegmentRows(r.source.SegmentationByRegion(selection), r.source)
	if err != nil {
		return err
	}
	r.surface.SetRows(KeySegmentTable, rows)
	r.surface.SetText(KeyGrandTotal, FormatNumber(total))
	return nil
}

// OrderTable renders the order table
type OrderTable struct {
	source  Source
	surface Surface
}

// NewOrderTable creates an order table renderer
func NewOrderTable(source Source, surface Surface) *OrderTable {
	return &OrderTable{source: source, surface: surface}
}

// Render draws the orders of the selected region
func (r *OrderTable) Render(selection string) error {
	rows, err := OrderRows(r.source.OrdersByRegion(selection), r.source)
	if err != nil {
		return err
	}
	r.surface.SetRows(KeyOrderTable, rows)
	return nil
}

// Markers toggles map markers by region
type Markers struct {
	source  Source
	surface Surface
}

// NewMarkers creates a marker visibility renderer
func NewMarkers(source Source, surface Surface) *Markers {
	return &Markers{source: source, surface: surface}
}

// Render shows the markers of the selected region and hides the rest
func (r *Markers) Render(selection string) error {
	for _, m := range MarkerVisibility(r.source.Locations(), r.source.LocationsByRegion(selection)) {
		r.surface.SetMarkerVisible(m.Name, m.Visible)
	}
	return nil
}

// ActiveRegion shows the label of the current selection
type ActiveRegion struct {
	broker  *filter.Broker
	surface Surface
}

// NewActiveRegion creates the active region label renderer
func NewActiveRegion(broker *filter.Broker, surface Surface) *ActiveRegion {
	return &ActiveRegion{broker: broker, surface: surface}
}

// Render writes the selection label
func (r *ActiveRegion) Render(selection string) error {
	desc, err := r.broker.Describe(selection)
	if err != nil {
		return err
	}
	r.surface.SetText(KeyActiveRegion, desc.Label)
	return nil
}

// Summary renders the headline cards. They do not depend on the selection.
type Summary struct {
	source  Source
	surface Surface
}

// NewSummary creates the summary cards renderer
func NewSummary(source Source, surface Surface) *Summary {
	return &Summary{source: source, surface: surface}
}

// Render writes the summary totals and growth figures
func (r *Summary) Render(string) error {
	s := r.source.Summary()
	r.surface.SetText(KeyTotalLocations, FormatNumber(s.TotalLocations))
	r.surface.SetText(KeyTotalCustomers, FormatNumber(s.TotalCustomers))
	r.surface.SetText(KeyTotalServices, FormatNumber(s.TotalServices))
	r.surface.SetText(KeyGrowthLocations, FormatGrowth(s.Growth.Locations))
	r.surface.SetText(KeyGrowthCustomers, FormatGrowth(s.Growth.Customers))
	r.surface.SetText(KeyGrowthServices, FormatGrowth(s.Growth.Services))
	return nil
}
