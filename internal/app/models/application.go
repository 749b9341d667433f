package models

import (
	"time"
)

// Status enumerates the states an ID application moves through.
// submitted -> under_review -> approved -> ready_for_pickup is the
// canonical forward path; returned, rejected and expired are exception
// statuses. The store does not enforce transition legality: any status
// may overwrite any prior status.
type Status string

const (
	StatusSubmitted      Status = "submitted"
	StatusUnderReview    Status = "under_review"
	StatusApproved       Status = "approved"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusReturned       Status = "returned"
	StatusRejected       Status = "rejected"
	StatusExpired        Status = "expired"
)

// Statuses lists every defined application status.
func Statuses() []Status {
	return []Status{
		StatusSubmitted,
		StatusUnderReview,
		StatusApproved,
		StatusReadyForPickup,
		StatusReturned,
		StatusRejected,
		StatusExpired,
	}
}

// Valid reports whether the status is one of the defined values.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Application defines the application model based on the 'applications'
// table. A revalidation request is a row with a nil department and nil
// file references.
type Application struct {
	ID            int64     `json:"id" db:"id" example:"1"`                                    // Surrogate key
	AppCode       string    `json:"id_display" db:"app_code" example:"APP2024-123456"`         // Display code, unique
	UserID        int64     `json:"user_id" db:"user_id" example:"1"`                          // Owning user
	Department    *string   `json:"department" db:"department" example:"College of Computing"` // Nullable for revalidations
	Status        Status    `json:"status" db:"status" example:"submitted"`
	Remarks       *string   `json:"remarks" db:"remarks"`
	Photo         *string   `json:"photo" db:"photo"`         // Stored photo filename (nullable)
	Signature     *string   `json:"signature" db:"signature"` // Stored signature filename (nullable)
	COR           *string   `json:"cor" db:"cor"`             // Certificate of registration filename (nullable)
	DateSubmitted time.Time `json:"date" db:"date_submitted"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ApplicationDetail is an application joined with its owner's identity
// fields, as returned by listings and single-record fetches.
type ApplicationDetail struct {
	Application
	IDNo     string  `json:"idno" db:"idno"`
	FullName string  `json:"fullname" db:"fullname"`
	Email    string  `json:"email" db:"email"`
	Course   *string `json:"course" db:"course"`
	Year     *string `json:"year" db:"year"`
}
