package render

// Element and table keys written by the renderers
const (
	KeyTotalLocations  = "totalLocations"
	KeyTotalCustomers  = "totalCustomers"
	KeyTotalServices   = "totalServices"
	KeyGrowthLocations = "growthLocations"
	KeyGrowthCustomers = "growthCustomers"
	KeyGrowthServices  = "growthServices"
	KeyGrandTotal      = "grandTotal"
	KeyActiveRegion    = "activeRegion"
	KeySegmentTable    = "segmentTable"
	KeyOrderTable      = "orderTable"
)

// Surface is where renderers write their display state.
// Implementations decide how the state is shown.
type Surface interface {
	SetText(elementKey, value string)
	SetRows(tableKey string, rows any)
	SetMarkerVisible(markerKey string, visible bool)
}
