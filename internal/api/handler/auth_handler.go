package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/api/metrics"
	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupAdmin registers a back-office operator account.
//
// @Summary      Admin signup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignupAdmin(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: "Validation failed", Details: err.Error()})
	}

	token, admin, err := h.authService.SignupAdmin(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(domain.RoleAdmin).Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  userResponse{ID: admin.ID, Username: admin.Username, Email: admin.Email, Role: admin.Role},
	})
}

// LoginAdmin authenticates a back-office operator.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	token, admin, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid admin credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  userResponse{ID: admin.ID, Username: admin.Username, Email: admin.Email, Role: admin.Role},
	})
}

// SignupClient registers a client account.
//
// @Summary      Client signup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/client/signup [post]
func (h *AuthHandler) SignupClient(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: "Validation failed", Details: err.Error()})
	}

	token, client, err := h.authService.SignupClient(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(domain.RoleClient).Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  userResponse{ID: client.ID, Username: client.Username, Email: client.Email, Role: client.Role},
	})
}

// LoginClient authenticates a client.
//
// @Summary      Client login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/client/login [post]
func (h *AuthHandler) LoginClient(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	token, client, err := h.authService.LoginClient(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(domain.RoleClient, "failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid client credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleClient, "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  userResponse{ID: client.ID, Username: client.Username, Email: client.Email, Role: client.Role},
	})
}
