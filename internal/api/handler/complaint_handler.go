package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thanuja200/Resolve-now/internal/api/metrics"
	"github.com/Thanuja200/Resolve-now/internal/core/ports"
)

// ComplaintHandler handles complaint submission and listing.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Create handles POST /api/complaints.
//
// @Summary      Submit a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createComplaintRequest  true  "Complaint details"
// @Success      201   {object}  complaintResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide all required fields")
	}

	created, err := h.service.Create(c.Request().Context(), identity, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ComplaintsSubmittedTotal.WithLabelValues(string(created.Category), string(created.Priority)).Inc()

	return c.JSON(http.StatusCreated, toComplaintResponse(created))
}

// ListAll handles GET /api/complaints (admin only).
//
// @Summary      List all complaints, newest first
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   complaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/complaints [get]
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.ListAll(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toComplaintListResponse(complaints))
}

// ListMine handles GET /api/complaints/my.
//
// @Summary      List the caller's complaints, newest first
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   complaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/complaints/my [get]
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toComplaintListResponse(complaints))
}
