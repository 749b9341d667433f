package dto

// CreateApplicationRequest carries the multipart form fields of a new
// ID application. Uploaded artifact filenames are filled in by the
// controller after the files have been stored.
type CreateApplicationRequest struct {
	FirstName     string `form:"firstName" binding:"required"`
	LastName      string `form:"lastName" binding:"required"`
	MiddleName    string `form:"middleName"`
	IDType        string `form:"idType"`
	Department    string `form:"department"`
	StudentNumber string `form:"studentNumber"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`

	// Stored artifact filenames, not bound from the form.
	Photo     *string `form:"-"`
	Signature *string `form:"-"`
	COR       *string `form:"-"`
}

// CreateApplicationResponse returns the generated display code.
type CreateApplicationResponse struct {
	Message string `json:"message" example:"Application submitted successfully"`
	AppID   string `json:"app_id" example:"APP2024-123456"`
}

// RevalidateRequest asks for a new revalidation row for an existing user.
type RevalidateRequest struct {
	IDNo     string `json:"idno" binding:"required"`
	FullName string `json:"fullname"`
}

// RevalidationSummary is the freshly created revalidation row.
type RevalidationSummary struct {
	IDDisplay string `json:"id_display" example:"APP2024-123456"`
	FullName  string `json:"fullname"`
	Status    string `json:"status" example:"submitted"`
	CreatedAt string `json:"created_at" example:"2024-06-01 09:30:00"`
}

// RevalidateResponse wraps the created revalidation summary.
type RevalidateResponse struct {
	Message     string              `json:"message" example:"Revalidation submitted"`
	Application RevalidationSummary `json:"application"`
}

// ApplicationResponse is an application joined with its owner identity
// fields, as rendered by listings and single-record fetches.
type ApplicationResponse struct {
	ID         int64   `json:"id" example:"1"`
	IDDisplay  string  `json:"id_display" example:"APP2024-123456"`
	UserID     int64   `json:"user_id" example:"1"`
	IDNo       string  `json:"idno" example:"2021-001"`
	FullName   string  `json:"fullname" example:"Juan Dela Cruz"`
	Email      string  `json:"email" example:"juan@school.edu"`
	Course     *string `json:"course"`
	Year       *string `json:"year"`
	Department *string `json:"department"`
	Status     string  `json:"status" example:"submitted"`
	Date       string  `json:"date" example:"2024-06-01"`
	CreatedAt  string  `json:"created_at" example:"2024-06-01 09:30:00"`
	Remarks    *string `json:"remarks"`
	Photo      *string `json:"photo"`
	Signature  *string `json:"signature"`
	COR        *string `json:"cor"`
}

// UpdateStatusRequest overwrites an application's status and remarks.
// Notify triggers a best-effort email to the owner; pickup_date
// switches the notification to the pickup template.
type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	Remarks    *string `json:"remarks"`
	Notify     bool    `json:"notify"`
	PickupDate string  `json:"pickup_date"`
	Batch      string  `json:"batch"`
}

// UpdateStatusResponse reports the outcome of a status update. The
// message distinguishes plain success, notified, notified-without-
// transporter and updated-but-mail-failed; none of these are request
// failures.
type UpdateStatusResponse struct {
	Message string `json:"message" example:"Application updated and user notified"`
	Preview string `json:"preview,omitempty" example:"sandbox://messages/2f1c..."`
}

// DeleteApplicationResponse confirms a (possibly idempotent) delete.
type DeleteApplicationResponse struct {
	Message string `json:"message" example:"Application deleted successfully"`
}
