package model

// Growth holds the period-over-period growth percentages of the summary cards
type Growth struct {
	Locations float64 `json:"locations"`
	Customers float64 `json:"customers"`
	Services  float64 `json:"services"`
}

// Summary holds the headline numbers of the dashboard
type Summary struct {
	TotalLocations int    `json:"total_locations"`
	TotalCustomers int    `json:"total_customers"`
	TotalServices  int    `json:"total_services"`
	Growth         Growth `json:"growth"`
}

// MarkerState is the visibility of one map marker and its label
type MarkerState struct {
	Name         string `json:"name"`
	Visible      bool   `json:"visible"`
	LabelVisible bool   `json:"label_visible"`
}

// DashboardState is everything the display surface currently shows
type DashboardState struct {
	Region  RegionDescriptor  `json:"region"`
	Texts   map[string]string `json:"texts"`
	Tables  map[string]any    `json:"tables"`
	Markers map[string]bool   `json:"markers"`
}

// RegionSelectRequest is the body of a region button click
type RegionSelectRequest struct {
	RegionID string `json:"region_id" binding:"required"`
}

// SessionResponse is returned when a dashboard session is created
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}
