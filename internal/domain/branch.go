package domain

import "time"

// BranchInsert holds the writable fields of a branch. Branch names are
// unique so the startup seed stays idempotent under concurrent boots.
type BranchInsert struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Address   string  `json:"address" validate:"required,max=500"`
	Phone     string  `json:"phone" validate:"required,min=7,max=20"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Hours     string  `json:"hours" validate:"required,max=300"`
}

// Branch is a stored bank branch location.
type Branch struct {
	ID int64 `json:"id"`
	BranchInsert
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultBranch is the branch every fresh deployment starts with.
func DefaultBranch() BranchInsert {
	return BranchInsert{
		Name:      "Lead City University Branch",
		Address:   "Lead City University Campus, Toll Gate Area, Ibadan, Oyo State",
		Phone:     "+2348000000001",
		Latitude:  7.3378,
		Longitude: 3.8564,
		Hours:     "Mon-Fri: 8:00am - 4:00pm",
	}
}
