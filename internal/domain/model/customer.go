package model

import "time"

// Customer represents a client company contact with its contract window.
// Contract dates carry calendar dates only; the time part is always midnight UTC.
type Customer struct {
	ID                 int64
	Name               string
	Email              string
	CompanyName        string
	Phone              string
	ProfilePictureURL  string
	ContractStartDate  time.Time
	ContractExpireDate time.Time
	CreatedAt          time.Time
}
