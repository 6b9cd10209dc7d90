package model

// Status is the fulfillment state shared by segmentation and order records
type Status string

const (
	StatusActive     Status = "active"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
)

// Valid reports whether the status is one of the recognized values
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusInProgress:
		return true
	}
	return false
}
