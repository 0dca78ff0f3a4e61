package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/app/services"
	"github.com/campusrate/campusrate/internal/middleware"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// FeedbackController handles feedback submission and reporting
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Submit records a student's feedback for a faculty member
// @Summary Submit feedback
// @Description Records one feedback entry per student per faculty member; ratings must lie in [1,5]
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body dto.SubmitFeedbackRequest true "Feedback ratings"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Feedback already submitted"
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	body, exists := ctx.Get(middleware.ValidatedBodyKey)
	req, ok := body.(*dto.SubmitFeedbackRequest)
	if !exists || !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid feedback data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	feedback, err := c.feedbackService.Submit(ctx, studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(feedback, "Feedback submitted"))
}

// Eligibility reports whether the student can still rate a faculty member
// @Summary Check feedback eligibility
// @Description Reports whether the authenticated student has already rated the given faculty member
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param facultyId path int true "Faculty ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EligibilityResponse} "Eligibility retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Router /feedback/eligibility/{facultyId} [get]
func (c *FeedbackController) Eligibility(ctx *gin.Context) {
	facultyID, err := strconv.ParseInt(ctx.Param("facultyId"), 10, 64)
	if err != nil || facultyID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID")
		errorDetail = errorDetail.WithDetails("Faculty ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	exists, err := c.feedbackService.HasFeedback(ctx, studentID, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.EligibilityResponse{
		FacultyID: facultyID,
		Eligible:  !exists,
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response, "Eligibility retrieved"))
}

// GetAll lists every feedback entry with student and faculty details
// @Summary List all feedback
// @Description Lists every feedback entry joined with student and faculty details, newest first
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FeedbackDetails} "Feedback retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /feedback [get]
func (c *FeedbackController) GetAll(ctx *gin.Context) {
	feedback, err := c.feedbackService.AllFeedbackWithDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(feedback, "Feedback retrieved"))
}
