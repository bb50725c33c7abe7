// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/services"
	"github.com/bkalungi/shulebase/internal/middleware"
)

// StaffController handles staff provisioning operations
type StaffController struct {
	provisioningService services.ProvisioningService
	logger              zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(provisioningService services.ProvisioningService, logger zerolog.Logger) *StaffController {
	return &StaffController{
		provisioningService: provisioningService,
		logger:              logger,
	}
}

// ProvisionTeacher handles full teacher provisioning
// @Summary Provision a teacher
// @Description Creates or reuses a login identity, synchronizes the directory profile and allocates a unique registration number for a teacher in the given school.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProvisionStaffRequest true "Teacher provisioning information"
// @Success 201 {object} dto.APIResponse{data=dto.ProvisionStaffResponse} "Teacher provisioned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation failure"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Provisioning step failed"
// @Router /staff/provision [post]
func (c *StaffController) ProvisionTeacher(ctx *gin.Context) {
	c.logger.Debug().Msg("ProvisionTeacher endpoint called")

	var req dto.ProvisionStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid provisioning request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.provisioningService.ProvisionTeacher(ctx, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("email", req.Email).
			Int64("schoolId", req.SchoolID).
			Msg("Teacher provisioning failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("identityId", resp.IdentityID).
		Str("registrationNo", resp.RegistrationNo).
		Bool("identityCreated", resp.IdentityCreated).
		Msg("Teacher provisioned")

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(resp))
}

// CreateStaffAccount handles account-only staff creation
// @Summary Create a staff account
// @Description Creates or reuses a login identity for a staff member and synchronizes the directory profile. Does not allocate a registration number.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffAccountRequest true "Staff account information"
// @Success 201 {object} dto.APIResponse{data=dto.StaffAccountResponse} "Staff account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation failure"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Identity or profile step failed"
// @Router /staff/accounts [post]
func (c *StaffController) CreateStaffAccount(ctx *gin.Context) {
	c.logger.Debug().Msg("CreateStaffAccount endpoint called")

	var req dto.CreateStaffAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid staff account request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.provisioningService.CreateStaffAccount(ctx, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("email", req.Email).
			Int64("schoolId", req.SchoolID).
			Msg("Staff account creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("identityId", resp.IdentityID).
		Msg("Staff account created")

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(resp))
}
