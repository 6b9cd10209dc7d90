package model

// SegmentKind is a customer segment
type SegmentKind string

const (
	SegmentEnterprise SegmentKind = "enterprise"
	SegmentSME        SegmentKind = "sme"
	SegmentGovernment SegmentKind = "government"
)

// SegmentKinds lists every segment in display order
var SegmentKinds = []SegmentKind{SegmentEnterprise, SegmentSME, SegmentGovernment}

// Valid reports whether the segment kind is known
func (k SegmentKind) Valid() bool {
	for _, kind := range SegmentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// SegmentationRecord describes order volume for a segment within a region and period
type SegmentationRecord struct {
	Segment    SegmentKind `db:"segment" json:"segment"`
	Period     string      `db:"period" json:"period"`
	RegionID   string      `db:"region_id" json:"region_id"`
	SubUnit    string      `db:"sub_unit" json:"sub_unit"` // Witel
	OrderCount int         `db:"order_count" json:"order_count"`
	Status     Status      `db:"status" json:"status"`
}

// SegmentRow is one rendered line of the segmentation table
type SegmentRow struct {
	Segment      SegmentKind `json:"segment"`
	SegmentLabel string      `json:"segment_label"`
	Period       string      `json:"period"`
	RegionID     string      `json:"region_id"`
	RegionCode   string      `json:"region_code"`
	RegionClass  string      `json:"region_class"`
	SubUnit      string      `json:"sub_unit"`
	OrderCount   int         `json:"order_count"`
	StatusLabel  string      `json:"status_label"`
	StatusColor  string      `json:"status_color"`
}
