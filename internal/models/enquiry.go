package models

import "time"

// Enquiry is a free-text question owned by exactly one account.
type Enquiry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
