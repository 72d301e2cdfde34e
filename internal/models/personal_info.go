package models

import "time"

// PersonalInfo is the private profile of a user. Each user has at most one
// record, looked up by user id and updated in place.
type PersonalInfo struct {
	ID          int                    `json:"id"`
	UserID      int                    `json:"userId"`
	FullName    string                 `json:"fullName"`
	BirthDate   string                 `json:"birthDate,omitempty"`
	Residence   string                 `json:"residence,omitempty"`
	Spouse      string                 `json:"spouse,omitempty"`
	Bio         string                 `json:"bio,omitempty"`
	Ambitions   string                 `json:"ambitions,omitempty"`
	PrivateData map[string]interface{} `json:"privateData,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// InsertPersonalInfo carries the fields needed to create a personal info record.
type InsertPersonalInfo struct {
	UserID      int
	FullName    string
	BirthDate   string
	Residence   string
	Spouse      string
	Bio         string
	Ambitions   string
	PrivateData map[string]interface{}
}

// PersonalInfoUpdate is a partial update; nil fields are left unchanged.
type PersonalInfoUpdate struct {
	FullName    *string
	BirthDate   *string
	Residence   *string
	Spouse      *string
	Bio         *string
	Ambitions   *string
	PrivateData map[string]interface{}
}
