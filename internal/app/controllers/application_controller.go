package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/app/services"
	"github.com/jmfrancisco/idlink-backend/internal/middleware"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/filestorage"
)

// artifactFields are the multipart file fields accepted on submission,
// in the order they are stored.
var artifactFields = []string{"photo", "signature", "cor"}

// ApplicationController handles ID application endpoints.
type ApplicationController struct {
	appService services.ApplicationService
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(appService services.ApplicationService, storage filestorage.FileStorage, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		appService: appService,
		storage:    storage,
		logger:     logger,
	}
}

func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid application ID"))
		return 0, false
	}
	return id, true
}

// List returns all applications
// @Summary List applications
// @Description Returns all applications joined with their owner identity, newest first. An optional user query filters to one applicant by ID number.
// @Tags applications
// @Produce json
// @Param user query string false "Filter by owner ID number"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	list, err := c.appService.List(ctx.Request.Context(), ctx.Query("user"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// Get returns a single application
// @Summary Get an application
// @Description Returns one application by its numeric ID.
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	resp, err := c.appService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create submits a new application
// @Summary Submit an application
// @Description Accepts a multipart form with applicant details and optional photo, signature and COR uploads. The owner account is resolved by email or student number.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.CreateApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "firstName and lastName are required"))
		return
	}

	stored := make(map[string]*string, len(artifactFields))
	for _, field := range artifactFields {
		header, err := ctx.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid file upload"))
			return
		}

		filename, err := c.storage.SaveArtifact(field, header)
		if err != nil {
			c.logger.Error().Err(err).Str("field", field).Msg("Failed to store uploaded artifact")
			middleware.HandleAPIError(ctx, err)
			return
		}
		stored[field] = &filename
	}
	req.Photo = stored["photo"]
	req.Signature = stored["signature"]
	req.COR = stored["cor"]

	resp, err := c.appService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Revalidate submits a revalidation for an existing user
// @Summary Submit a revalidation
// @Description Creates a new revalidation application for an existing user, looked up by ID number.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.RevalidateRequest true "Revalidation request"
// @Success 201 {object} dto.RevalidateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /applications/revalidate [post]
func (c *ApplicationController) Revalidate(ctx *gin.Context) {
	var req dto.RevalidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "idno is required"))
		return
	}

	resp, err := c.appService.CreateRevalidation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateStatus updates an application's status
// @Summary Update application status
// @Description Overwrites status and remarks. With notify=true, sends a best-effort email to the owner; mail failure degrades the message but never the status write.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID or status value"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "status is required"))
		return
	}

	resp, err := c.appService.UpdateStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Delete removes an application
// @Summary Delete an application
// @Description Deletes an application. Deleting an absent row still reports success.
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.DeleteApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Router /applications/{id} [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.appService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteApplicationResponse{Message: "Application deleted successfully"})
}

// CountUsers returns the user count
// @Summary Count users
// @Description Returns the total number of registered users across all roles.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserCountResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/count [get]
func (c *ApplicationController) CountUsers(ctx *gin.Context) {
	count, err := c.appService.CountUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserCountResponse{Count: count})
}
