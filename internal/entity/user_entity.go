package entity

import (
	"time"
)

// User rows are created by the external registration flow. This service only
// reads them and maintains relationship edges.
type User struct {
	Id        int64
	Email     string
	Password  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
