package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/app/repositories"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/filestorage"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/mailer"
)

// Response messages for status updates. The three notify outcomes are
// all HTTP successes: a failed or skipped email never fails the
// request once the status write has been committed.
const (
	msgUpdated              = "Application updated successfully"
	msgUpdatedNotified      = "Application updated and user notified"
	msgUpdatedNoTransporter = "Application updated and user notified (no transporter)"
	msgUpdatedMailFailed    = "Application updated but failed to send email"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ApplicationService coordinates the application status workflow: it
// owns creation, the permissive status lifecycle and the best-effort
// notification side effect.
type ApplicationService interface {
	List(ctx context.Context, ownerIDNo string) ([]dto.ApplicationResponse, error)
	Get(ctx context.Context, id int64) (*dto.ApplicationResponse, error)
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error)
	CreateRevalidation(ctx context.Context, req *dto.RevalidateRequest) (*dto.RevalidateResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error)
	Delete(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)
}

type applicationServiceImpl struct {
	appRepo  repositories.IApplicationRepository
	userRepo repositories.IUserRepository
	storage  filestorage.FileStorage
	mail     mailer.Mailer
	logger   zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	appRepo repositories.IApplicationRepository,
	userRepo repositories.IUserRepository,
	storage filestorage.FileStorage,
	mail mailer.Mailer,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		appRepo:  appRepo,
		userRepo: userRepo,
		storage:  storage,
		mail:     mail,
		logger:   logger,
	}
}

// generateAppCode builds the display code APP<year>-<6 digits>, the
// suffix being the trailing digits of the current millisecond clock.
// Uniqueness is best-effort; the UNIQUE constraint on the column turns
// a same-millisecond collision into a store error instead of silent
// corruption.
func generateAppCode(now time.Time) string {
	return fmt.Sprintf("APP%d-%06d", now.Year(), now.UnixMilli()%1_000_000)
}

func toResponse(detail *models.ApplicationDetail) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:         detail.ID,
		IDDisplay:  detail.AppCode,
		UserID:     detail.UserID,
		IDNo:       detail.IDNo,
		FullName:   detail.FullName,
		Email:      detail.Email,
		Course:     detail.Course,
		Year:       detail.Year,
		Department: detail.Department,
		Status:     string(detail.Status),
		Date:       detail.DateSubmitted.Format(dateLayout),
		CreatedAt:  detail.CreatedAt.Format(dateTimeLayout),
		Remarks:    detail.Remarks,
		Photo:      detail.Photo,
		Signature:  detail.Signature,
		COR:        detail.COR,
	}
}

// List returns application summaries, newest creation time first.
func (s *applicationServiceImpl) List(ctx context.Context, ownerIDNo string) ([]dto.ApplicationResponse, error) {
	details, err := s.appRepo.List(ctx, strings.TrimSpace(ownerIDNo))
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, toResponse(detail))
	}
	return responses, nil
}

// Get returns a single application joined with its owner identity.
func (s *applicationServiceImpl) Get(ctx context.Context, id int64) (*dto.ApplicationResponse, error) {
	detail, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toResponse(detail)
	return &response, nil
}

// Create persists a new application with status submitted and returns
// the generated display code. The owner is resolved by email or ID
// number, whichever matches.
func (s *applicationServiceImpl) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.StudentNumber) == "" {
		return nil, fmt.Errorf("%w: email or studentNumber is required", apperrors.ErrValidationFailed)
	}

	owner, err := s.userRepo.FindByEmailOrIDNo(ctx, strings.TrimSpace(req.Email), strings.TrimSpace(req.StudentNumber))
	if err != nil {
		return nil, err
	}

	var department *string
	if d := strings.TrimSpace(req.Department); d != "" {
		department = &d
	}

	remarks := fmt.Sprintf("Application submitted by %s %s", req.FirstName, req.LastName)

	app := &models.Application{
		AppCode:    generateAppCode(time.Now()),
		UserID:     owner.ID,
		Department: department,
		Status:     models.StatusSubmitted,
		Remarks:    &remarks,
		Photo:      req.Photo,
		Signature:  req.Signature,
		COR:        req.COR,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appCode", app.AppCode).
		Int64("userID", owner.ID).
		Msg("Application submitted")

	return &dto.CreateApplicationResponse{
		Message: "Application submitted successfully",
		AppID:   app.AppCode,
	}, nil
}

// CreateRevalidation persists a revalidation row for an existing user:
// no department, no uploaded artifacts, status submitted.
func (s *applicationServiceImpl) CreateRevalidation(ctx context.Context, req *dto.RevalidateRequest) (*dto.RevalidateResponse, error) {
	lookup := strings.TrimSpace(req.IDNo)
	owner, err := s.userRepo.FindByEmailOrIDNo(ctx, lookup, lookup)
	if err != nil {
		return nil, err
	}

	fullName := owner.FullName
	if fullName == "" {
		fullName = strings.TrimSpace(req.FullName)
	}

	remarksText := "Revalidation requested"
	if fullName != "" {
		remarksText = fmt.Sprintf("Revalidation requested by %s", fullName)
	}

	app := &models.Application{
		AppCode: generateAppCode(time.Now()),
		UserID:  owner.ID,
		Status:  models.StatusSubmitted,
		Remarks: &remarksText,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appCode", app.AppCode).
		Int64("userID", owner.ID).
		Msg("Revalidation submitted")

	return &dto.RevalidateResponse{
		Message: "Revalidation submitted",
		Application: dto.RevalidationSummary{
			IDDisplay: app.AppCode,
			FullName:  fullName,
			Status:    string(app.Status),
			CreatedAt: app.CreatedAt.Format(dateTimeLayout),
		},
	}, nil
}

// UpdateStatus overwrites status and remarks, then optionally notifies
// the owner by email. The status write commits first; notification is
// best-effort and its failure degrades the response message instead of
// failing the request.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error) {
	status := models.Status(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, req.Status)
	}

	// No transition-legality check: any status may overwrite any
	// prior status. Workflow authority lives in the clients.
	if err := s.appRepo.UpdateStatus(ctx, id, status, req.Remarks); err != nil {
		return nil, err
	}

	if !req.Notify {
		return &dto.UpdateStatusResponse{Message: msgUpdated}, nil
	}

	contact, err := s.appRepo.GetOwnerContact(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.mail.Configured() {
		return &dto.UpdateStatusResponse{Message: msgUpdatedNoTransporter}, nil
	}

	subject, body := buildStatusEmail(contact.FullName, status, req.Remarks, req.PickupDate, req.Batch)

	result, err := s.mail.Send(contact.Email, subject, body)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("applicationID", id).
			Str("to", contact.Email).
			Msg("Failed to send notification email")
		return &dto.UpdateStatusResponse{Message: msgUpdatedMailFailed}, nil
	}

	return &dto.UpdateStatusResponse{
		Message: msgUpdatedNotified,
		Preview: result.Preview,
	}, nil
}

// buildStatusEmail renders the notification subject and body. A pickup
// date switches to the pickup template; a batch is mentioned only when
// supplied.
func buildStatusEmail(fullName string, status models.Status, remarks *string, pickupDate, batch string) (string, string) {
	remarksText := ""
	if remarks != nil {
		remarksText = *remarks
	}

	if pickupDate != "" {
		batchText := ""
		if batch != "" {
			batchText = fmt.Sprintf(" (Batch: %s)", batch)
		}
		subject := "ID Pickup Scheduled"
		body := fmt.Sprintf(
			"Hello %s,\n\nYour ID is scheduled for pickup on %s%s.\n\nRemarks: %s\n\nPlease check the Track Status page for updates.\n\nRegards,\nIDLink Team",
			fullName, pickupDate, batchText, remarksText)
		return subject, body
	}

	subject := "Application Update"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour application status is now %s.\n\nRemarks: %s\n\nPlease check the Track Status page for updates.\n\nRegards,\nIDLink Team",
		fullName, status, remarksText)
	return subject, body
}

// Delete removes an application and its stored artifact files.
// Deleting an absent row reports success as well; the operation is
// idempotent. Artifact removal is best-effort: a leftover file on disk
// must not fail a delete whose row is already gone.
func (s *applicationServiceImpl) Delete(ctx context.Context, id int64) error {
	detail, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil
		}
		return fmt.Errorf("error deleting application: %w", err)
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}

	for _, filename := range []*string{detail.Photo, detail.Signature, detail.COR} {
		if filename == nil {
			continue
		}
		if err := s.storage.DeleteFile(*filename); err != nil {
			s.logger.Warn().Err(err).
				Int64("applicationID", id).
				Str("file", *filename).
				Msg("Failed to remove stored artifact")
		}
	}

	return nil
}

// CountUsers returns the user count across all roles.
func (s *applicationServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
