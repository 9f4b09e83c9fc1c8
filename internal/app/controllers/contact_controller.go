package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/app/services"
	"github.com/harutok/practiceshare/internal/middleware"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
)

// ContactController handles parent inquiry endpoints
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Create handles the public contact form
// @Summary Send a contact message
// @Description Stores a parent inquiry and notifies the educator by email
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Inquiry data"
// @Success 201 {object} dto.APIResponse{data=dto.ContactCreatedResponse} "Inquiry stored"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Practice not published or contact disabled"
// @Failure 404 {object} dto.APIResponse "Practice not found"
// @Router /contacts [post]
func (c *ContactController) Create(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.contactService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Your message has been sent. Please wait for the educator to reply.",
		Data:    resp,
	})
}

// List handles the educator's inbox
// @Summary List own contacts
// @Description Returns inquiries addressed to the educator's practices, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (new, replied, closed)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ContactListItem,pagination=dto.Pagination} "Contacts"
// @Failure 400 {object} dto.APIResponse "Invalid parameters"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /contacts [get]
func (c *ContactController) List(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	page, limit, err := helpers.ParsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := models.ContactStatus(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid contact status"))
		return
	}

	items, total, err := c.contactService.List(ctx.Request.Context(), educatorID, status, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(items, helpers.NewPagination(page, limit, total)))
}

// Get handles reading one inquiry
// @Summary Get a contact
// @Description Returns one inquiry; only the owner of the target practice may read it
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact id"
// @Success 200 {object} dto.APIResponse{data=models.Contact} "Contact"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Contact not found"
// @Router /contacts/{id} [get]
func (c *ContactController) Get(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	contact, err := c.contactService.Get(ctx.Request.Context(), ctx.Param("id"), educatorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact))
}

// UpdateStatus moves an inquiry through its lifecycle
// @Summary Update contact status
// @Description Sets the status to new, replied or closed
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact id"
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Contact} "Updated contact"
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Contact not found"
// @Router /contacts/{id}/status [put]
func (c *ContactController) UpdateStatus(ctx *gin.Context) {
	educatorID, _ := middleware.GetEducatorID(ctx)

	var req dto.UpdateContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	contact, err := c.contactService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), educatorID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact))
}
