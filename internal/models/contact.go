package models

import "time"

// ContactMessage is a submission from the public contact form. Messages are
// append-only and have no owner.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage carries the fields needed to create a contact message.
type InsertContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}
