package render

import (
	"fmt"

	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/pkg/model"
)

// RegionLookup resolves region ids for display fields
type RegionLookup interface {
	Region(id string) (model.Region, error)
}

// SegmentRows projects segmentation records into table rows and returns the
// aggregate order count alongside them
func SegmentRows(records []model.SegmentationRecord, regions RegionLookup) ([]model.SegmentRow, int, error) {
	rows := make([]model.SegmentRow, 0, len(records))
	for _, rec := range records {
		style, err := StatusStyleFor(rec.Status)
		if err != nil {
			return nil, 0, fmt.Errorf("segmentation row %s/%s: %w", rec.RegionID, rec.SubUnit, err)
		}
		region, err := regions.Region(rec.RegionID)
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, model.SegmentRow{
			Segment:      rec.Segment,
			SegmentLabel: capitalizeFirst(string(rec.Segment)),
			Period:       rec.Period,
			RegionID:     rec.RegionID,
			RegionCode:   region.Code,
			RegionClass:  RegionClass(rec.RegionID),
			SubUnit:      rec.SubUnit,
			OrderCount:   rec.OrderCount,
			StatusLabel:  style.SegmentLabel,
			StatusColor:  style.Color,
		})
	}
	return rows, dataset.AggregateOrderCount(records), nil
}

// OrderRows projects order records into table rows
func OrderRows(records []model.OrderRecord, regions RegionLookup) ([]model.OrderRow, error) {
	rows := make([]model.OrderRow, 0, len(records))
	for _, o := range records {
		style, err := StatusStyleFor(o.Status)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		region, err := regions.Region(o.RegionID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.OrderRow{
			ID:          o.ID,
			Customer:    o.Customer,
			ServiceType: o.ServiceType,
			RegionID:    o.RegionID,
			RegionCode:  region.Code,
			RegionClass: RegionClass(o.RegionID),
			StatusLabel: style.OrderLabel,
			StatusColor: style.Color,
			Progress:    o.Progress,
		})
	}
	return rows, nil
}

// MarkerVisibility marks every location in visible as shown and all others hidden.
// Label visibility mirrors the marker.
func MarkerVisibility(all, visible []model.Location) []model.MarkerState {
	shown := make(map[string]bool, len(visible))
	for _, loc := range visible {
		shown[loc.Name] = true
	}

	states := make([]model.MarkerState, 0, len(all))
	for _, loc := range all {
		v := shown[loc.Name]
		states = append(states, model.MarkerState{Name: loc.Name, Visible: v, LabelVisible: v})
	}
	return states
}
