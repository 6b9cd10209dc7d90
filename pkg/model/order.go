package model

// OrderRecord is an individual customer service order
type OrderRecord struct {
	ID          string `db:"id" json:"id"`
	Customer    string `db:"customer" json:"customer"`
	ServiceType string `db:"service_type" json:"service_type"`
	RegionID    string `db:"region_id" json:"region_id"`
	Status      Status `db:"status" json:"status"`
	Progress    int    `db:"progress" json:"progress"` // Percent, 0-100
}

// OrderRow is one rendered line of the order table
type OrderRow struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	ServiceType string `json:"service_type"`
	RegionID    string `json:"region_id"`
	RegionCode  string `json:"region_code"`
	RegionClass string `json:"region_class"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	Progress    int    `json:"progress"`
}
