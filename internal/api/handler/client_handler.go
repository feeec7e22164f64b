package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/core/ports"
)

// ClientHandler handles the admin-facing client management endpoints.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List returns every client record, newest first.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create registers a client account on the admin's behalf.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: "Validation failed", Details: err.Error()})
	}

	client, err := h.service.Create(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update changes a client's username and email.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "New profile fields"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: "Validation failed", Details: err.Error()})
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Username, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// ToggleStatus flips a client's isActive flag.
//
// @Summary      Toggle client status
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/toggle-status [patch]
func (h *ClientHandler) ToggleStatus(c echo.Context) error {
	client, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Count returns the total number of clients.
//
// @Summary      Total client count
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /clients/count [get]
func (h *ClientHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// Active returns the number of active clients.
//
// @Summary      Active client count
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /clients/active [get]
func (h *ClientHandler) Active(c echo.Context) error {
	n, err := h.service.ActiveCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// TodayLogins returns the number of clients who logged in today (UTC).
//
// @Summary      Today's login count
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /clients/today-logins [get]
func (h *ClientHandler) TodayLogins(c echo.Context) error {
	n, err := h.service.TodayLogins(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}
