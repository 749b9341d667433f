package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/logger"
)

// OwnerContact is the owner identity needed for a notification email.
type OwnerContact struct {
	Email    string
	FullName string
}

// IApplicationRepository defines application persistence operations.
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	List(ctx context.Context, ownerIDNo string) ([]*models.ApplicationDetail, error)
	GetByID(ctx context.Context, id int64) (*models.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status, remarks *string) error
	Delete(ctx context.Context, id int64) error
	GetOwnerContact(ctx context.Context, id int64) (*OwnerContact, error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// detailColumns are the joined columns scanned into ApplicationDetail.
var detailColumns = []string{
	"a.id", "a.app_code", "a.user_id", "a.department", "a.status", "a.remarks",
	"a.photo", "a.signature", "a.cor", "a.date_submitted", "a.created_at",
	"u.idno", "u.fullname", "u.email", "u.course", "u.year",
}

func scanDetail(row pgx.Row) (*models.ApplicationDetail, error) {
	detail := &models.ApplicationDetail{}
	err := row.Scan(
		&detail.ID,
		&detail.AppCode,
		&detail.UserID,
		&detail.Department,
		&detail.Status,
		&detail.Remarks,
		&detail.Photo,
		&detail.Signature,
		&detail.COR,
		&detail.DateSubmitted,
		&detail.CreatedAt,
		&detail.IDNo,
		&detail.FullName,
		&detail.Email,
		&detail.Course,
		&detail.Year,
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Create inserts a new application row and fills in the DB-generated
// id, submission date and creation timestamp. A single INSERT ..
// RETURNING avoids a select-back between insert and response.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	sql, args, err := r.sb.Insert("applications").
		Columns("app_code", "user_id", "department", "status", "remarks", "photo", "signature", "cor").
		Values(app.AppCode, app.UserID, app.Department, app.Status, app.Remarks, app.Photo, app.Signature, app.COR).
		Suffix("RETURNING id, date_submitted, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.DateSubmitted, &app.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("appCode", app.AppCode).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// List retrieves applications joined with owner identity, newest first.
// Only rows owned by applicant roles (student, employee) are eligible;
// a non-empty ownerIDNo restricts results to that owner.
func (r *ApplicationRepository) List(ctx context.Context, ownerIDNo string) ([]*models.ApplicationDetail, error) {
	query := r.sb.Select(detailColumns...).
		From("applications a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"u.role": []models.RoleType{models.RoleStudent, models.RoleEmployee}})

	if ownerIDNo != "" {
		query = query.Where(squirrel.Eq{"u.idno": ownerIDNo})
	}

	sql, args, err := query.OrderBy("a.created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	details := []*models.ApplicationDetail{}
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row during list")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return details, nil
}

// GetByID retrieves a single application joined with owner identity.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.ApplicationDetail, error) {
	sql, args, err := r.sb.Select(detailColumns...).
		From("applications a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	detail, err := scanDetail(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application by ID: %w", err)
	}

	return detail, nil
}

// UpdateStatus overwrites the status and remarks of an application.
// Updating a missing row affects zero rows and is not an error; the
// write is deliberately unconditional.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.Status, remarks *string) error {
	sql, args, err := r.sb.Update("applications").
		SetMap(map[string]interface{}{
			"status":  status,
			"remarks": remarks,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update application SQL")
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update application query")
		return fmt.Errorf("error updating application: %w", err)
	}

	return nil
}

// Delete removes an application row. Deleting a missing row is a
// no-op, keeping the operation idempotent.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete application SQL")
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}

	return nil
}

// GetOwnerContact resolves the email and name of the user owning an
// application, for notification delivery.
func (r *ApplicationRepository) GetOwnerContact(ctx context.Context, id int64) (*OwnerContact, error) {
	sql, args, err := r.sb.Select("u.email", "u.fullname").
		From("applications a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building owner contact SQL")
		return nil, fmt.Errorf("failed to build owner contact query: %w", err)
	}

	contact := &OwnerContact{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&contact.Email, &contact.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning owner contact row")
		return nil, fmt.Errorf("error resolving application owner: %w", err)
	}

	return contact, nil
}
