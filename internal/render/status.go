package render

import (
	"fmt"

	"ghost-dashboard/pkg/model"
)

// UnknownStatusError is returned for a status outside the recognized values
type UnknownStatusError struct {
	Status model.Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status %q", e.Status)
}

// StatusStyle is how a status is shown in the tables
type StatusStyle struct {
	SegmentLabel string // Segmentation table
	OrderLabel   string // Order table
	Color        string
}

var statusStyles = map[model.Status]StatusStyle{
	model.StatusActive:     {SegmentLabel: "Active", OrderLabel: "Completed", Color: "emerald"},
	model.StatusPending:    {SegmentLabel: "Pending", OrderLabel: "Pending", Color: "yellow"},
	model.StatusInProgress: {SegmentLabel: "In Progress", OrderLabel: "In Progress", Color: "blue"},
}

// StatusStyleFor looks up the display style of a status
func StatusStyleFor(status model.Status) (StatusStyle, error) {
	style, ok := statusStyles[status]
	if !ok {
		return StatusStyle{}, &UnknownStatusError{Status: status}
	}
	return style, nil
}
