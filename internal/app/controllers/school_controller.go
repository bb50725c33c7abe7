package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/services"
	"github.com/bkalungi/shulebase/internal/middleware"
)

// SchoolController handles school related operations
type SchoolController struct {
	schoolService services.SchoolService
	logger        zerolog.Logger
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService, logger zerolog.Logger) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
		logger:        logger,
	}
}

// CreateSchool handles school creation
// @Summary Create a school
// @Description Registers a new school. The registration code prefix is derived from the school name.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=dto.SchoolResponse} "School created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 409 {object} dto.ErrorResponse "School already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid school request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.schoolService.CreateSchool(ctx, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("name", req.Name).Msg("School creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(resp))
}

// GetSchool handles school retrieval by ID
// @Summary Get a school
// @Description Returns a school by its identifier.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=dto.SchoolResponse} "School found"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID").
			WithDetails("School ID must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.schoolService.GetSchoolByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(resp))
}
