package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/app/repositories"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
)

// In-memory repositories with enough store semantics for an
// end-to-end walk through the workflow.

type memUserRepo struct {
	users  []*models.User
	nextID int64
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.IDNo == user.IDNo {
			return 0, apperrors.ErrDuplicateUser
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users = append(r.users, user)
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) FindByEmailOrIDNo(_ context.Context, email, idno string) (*models.User, error) {
	for _, u := range r.users {
		if (email != "" && u.Email == email) || (idno != "" && u.IDNo == idno) {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memAppRepo struct {
	users  *memUserRepo
	apps   []*models.Application
	nextID int64
}

func (r *memAppRepo) Create(_ context.Context, app *models.Application) error {
	r.nextID++
	app.ID = r.nextID
	app.DateSubmitted = time.Now()
	app.CreatedAt = time.Now()
	r.apps = append(r.apps, app)
	return nil
}

func (r *memAppRepo) detail(app *models.Application) (*models.ApplicationDetail, error) {
	for _, u := range r.users.users {
		if u.ID == app.UserID {
			return &models.ApplicationDetail{
				Application: *app,
				IDNo:        u.IDNo,
				FullName:    u.FullName,
				Email:       u.Email,
				Course:      u.Course,
				Year:        u.Year,
			}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memAppRepo) List(_ context.Context, ownerIDNo string) ([]*models.ApplicationDetail, error) {
	details := []*models.ApplicationDetail{}
	for _, app := range r.apps {
		d, err := r.detail(app)
		if err != nil {
			continue
		}
		if ownerIDNo != "" && d.IDNo != ownerIDNo {
			continue
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *memAppRepo) GetByID(_ context.Context, id int64) (*models.ApplicationDetail, error) {
	for _, app := range r.apps {
		if app.ID == id {
			return r.detail(app)
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (r *memAppRepo) UpdateStatus(_ context.Context, id int64, status models.Status, remarks *string) error {
	for _, app := range r.apps {
		if app.ID == id {
			app.Status = status
			app.Remarks = remarks
			return nil
		}
	}
	// Matches the store: an absent row is not an error here.
	return nil
}

func (r *memAppRepo) Delete(_ context.Context, id int64) error {
	for i, app := range r.apps {
		if app.ID == id {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memAppRepo) GetOwnerContact(_ context.Context, id int64) (*repositories.OwnerContact, error) {
	detail, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return &repositories.OwnerContact{Email: detail.Email, FullName: detail.FullName}, nil
}

func TestApplicationLifecycle(t *testing.T) {
	ctx := context.Background()
	userRepo := &memUserRepo{}
	appRepo := &memAppRepo{users: userRepo}
	mail := &recordingMailer{configured: true}

	authSvc := NewAuthService(userRepo, zerolog.Nop())
	appSvc := NewApplicationService(appRepo, userRepo, &recordingStorage{}, mail, zerolog.Nop())

	// Register an applicant.
	_, err := authSvc.Register(ctx, &dto.RegisterRequest{
		IDNo:     "2021-001",
		FullName: "Juan Dela Cruz",
		Email:    "juan@school.edu",
		Password: "secret123",
		Role:     "student",
	})
	require.NoError(t, err)

	// Registering the same idno again conflicts.
	_, err = authSvc.Register(ctx, &dto.RegisterRequest{
		IDNo:     "2021-001",
		FullName: "Someone Else",
		Email:    "other@school.edu",
		Password: "secret123",
		Role:     "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)

	// Submit an application.
	created, err := appSvc.Create(ctx, &dto.CreateApplicationRequest{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Email:     "juan@school.edu",
	})
	require.NoError(t, err)
	require.Len(t, appRepo.apps, 1)
	appID := appRepo.apps[0].ID

	// Move it through the workflow with a notification.
	remarks := "Ready at the registrar"
	updated, err := appSvc.UpdateStatus(ctx, appID, &dto.UpdateStatusRequest{
		Status:     "ready_for_pickup",
		Remarks:    &remarks,
		Notify:     true,
		PickupDate: "2024-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Application updated and user notified", updated.Message)
	assert.Equal(t, "juan@school.edu", mail.to)

	// Fetch reflects exactly what was written.
	got, err := appSvc.Get(ctx, appID)
	require.NoError(t, err)
	assert.Equal(t, created.AppID, got.IDDisplay)
	assert.Equal(t, "ready_for_pickup", got.Status)
	require.NotNil(t, got.Remarks)
	assert.Equal(t, remarks, *got.Remarks)

	// The listing filter restricts by owner idno.
	list, err := appSvc.List(ctx, "2021-001")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = appSvc.List(ctx, "9999-999")
	require.NoError(t, err)
	assert.Empty(t, list)
}
