package models

import (
	"time"
)

// RoleType defines the user role
type RoleType string

const (
	RoleStudent  RoleType = "student"
	RoleEmployee RoleType = "employee"
	RoleStaff    RoleType = "staff"
)

// Valid reports whether the role is one of the defined roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployee, RoleStaff:
		return true
	}
	return false
}

// IsApplicant reports whether users with this role submit ID
// applications. Staff accounts review applications but never appear as
// applicants in listings.
func (r RoleType) IsApplicant() bool {
	return r == RoleStudent || r == RoleEmployee
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                 // Surrogate key
	IDNo      string    `json:"idno" db:"idno" example:"2021-001"`                      // External ID number, unique
	FullName  string    `json:"fullname" db:"fullname" example:"Juan Dela Cruz"`        // Full name
	Email     string    `json:"email" db:"email" example:"juan@school.edu"`             // Email address, unique
	Password  string    `json:"-" db:"password"`                                        // Hashed password (never serialized)
	Role      RoleType  `json:"role" db:"role" example:"student"`                       // student, employee or staff
	Course    *string   `json:"course,omitempty" db:"course" example:"BSIT"`            // Course, students only (nullable)
	Year      *string   `json:"year,omitempty" db:"year" example:"3"`                   // Year level (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
