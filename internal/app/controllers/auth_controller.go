package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
)

// AuthController handles registration, login and profile operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles educator registration
// @Summary Register a new educator
// @Description Creates an educator account and returns the profile with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Login handles educator login
// @Summary Log in
// @Description Verifies credentials and returns the profile with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Authenticated"
// @Failure 400 {object} dto.APIResponse "Missing fields"
// @Failure 401 {object} dto.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetMe returns the authenticated educator's profile
// @Summary Get own profile
// @Description Returns the authenticated educator's profile and practice count
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Educator not found"
// @Router /auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	profile, err := c.authService.GetProfile(ctx.Request.Context(), educatorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile applies a partial profile update
// @Summary Update own profile
// @Description Updates name, bio, specialties and/or contact availability
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.EducatorResponse} "Updated profile"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	educator, err := c.authService.UpdateProfile(ctx.Request.Context(), educatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(educator))
}
