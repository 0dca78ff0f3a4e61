package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/app/services"
	"github.com/campusrate/campusrate/internal/middleware"
	"github.com/campusrate/campusrate/internal/pkg/filestorage"
)

// imageBaseURL is where stored faculty photos are served from.
const imageBaseURL = "/uploads"

// FacultyController handles faculty registry operations
type FacultyController struct {
	facultyService  services.FacultyService
	feedbackService services.FeedbackService
	storage         filestorage.FileStorage
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, feedbackService services.FeedbackService, storage filestorage.FileStorage) *FacultyController {
	return &FacultyController{
		facultyService:  facultyService,
		feedbackService: feedbackService,
		storage:         storage,
	}
}

func parseFacultyID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID")
		errorDetail = errorDetail.WithDetails("Faculty ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// saveUploadedImage stores an optional multipart image part. Returns
// nil when no file was uploaded.
func (c *FacultyController) saveUploadedImage(ctx *gin.Context) (*string, bool) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		// No file part is fine; the image is optional
		return nil, true
	}

	filename, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image upload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}

	return &filename, true
}

// withRatings merges faculty records with aggregated ratings. Faculty
// without feedback get a zero-valued placeholder here; the service
// reports absence, the placeholder is purely for display.
func withRatings(faculty []*models.Faculty, averages map[int64]*models.RatingAverages) []dto.FacultyWithRatings {
	result := make([]dto.FacultyWithRatings, 0, len(faculty))
	for _, f := range faculty {
		entry := dto.FacultyWithRatings{
			FacultyResponse: dto.NewFacultyResponse(f, imageBaseURL),
		}
		if avg, ok := averages[f.ID]; ok {
			entry.Ratings = *avg
		}
		result = append(result, entry)
	}
	return result
}

// GetAll lists faculty members with aggregated ratings
// @Summary List faculty
// @Description Lists all faculty members sorted by name, optionally filtered by department, each with aggregated ratings
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyWithRatings} "Faculty retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) GetAll(ctx *gin.Context) {
	var (
		faculty []*models.Faculty
		err     error
	)

	if department := ctx.Query("department"); department != "" {
		faculty, err = c.facultyService.GetByDepartment(ctx, department)
	} else {
		faculty, err = c.facultyService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	averages, err := c.feedbackService.AllAverages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(withRatings(faculty, averages), "Faculty retrieved"))
}

// GetByID retrieves a single faculty member
// @Summary Get faculty details
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetByID(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFacultyResponse(faculty, imageBaseURL), "Faculty retrieved"))
}

// GetRatings returns the aggregated ratings of one faculty member
// @Summary Get faculty ratings
// @Description Returns per-dimension and overall averages; data is null when the faculty has no feedback yet
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.RatingAverages} "Ratings retrieved"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/ratings [get]
func (c *FacultyController) GetRatings(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	averages, err := c.feedbackService.AverageRatings(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// averages is nil when no feedback exists; the client must render
	// that as "no data", not as zeros
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(averages, "Ratings retrieved"))
}

// Create adds a new faculty member
// @Summary Create faculty
// @Description Creates a faculty member with an optional photo upload
// @Tags faculty
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param department formData string true "Department"
// @Param subject formData string true "Subject"
// @Param image formData file false "Photo (png/jpg/jpeg)"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /faculty [post]
func (c *FacultyController) Create(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, ok := c.saveUploadedImage(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.Create(ctx, req.Name, req.Department, req.Subject, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewFacultyResponse(faculty, imageBaseURL), "Faculty created"))
}

// Update modifies an existing faculty member
// @Summary Update faculty
// @Description Updates a faculty member; without a new photo the stored image reference is preserved
// @Tags faculty
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID" minimum(1)
// @Param name formData string true "Name"
// @Param department formData string true "Department"
// @Param subject formData string true "Subject"
// @Param image formData file false "Replacement photo (png/jpg/jpeg)"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) Update(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	newImage, ok := c.saveUploadedImage(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.Update(ctx, id, req.Name, req.Department, req.Subject, newImage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFacultyResponse(faculty, imageBaseURL), "Faculty updated"))
}

// Delete removes a faculty member and all of its feedback
// @Summary Delete faculty
// @Description Deletes a faculty member together with every feedback row referencing it
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Faculty deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) Delete(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Faculty and associated feedback deleted"))
}

// GetFeedback returns the detailed feedback report of one faculty member
// @Summary Faculty feedback report
// @Description Lists all feedback for a faculty member with submitting student departments, newest first, plus aggregated averages
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Report retrieved"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/feedback [get]
func (c *FacultyController) GetFeedback(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	feedback, err := c.feedbackService.FeedbackForFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	averages, err := c.feedbackService.AverageRatings(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"feedback": feedback,
		"averages": averages,
	}, "Feedback report retrieved"))
}
