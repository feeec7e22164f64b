package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/api/metrics"
	"github.com/clientdesk/portal/internal/core/ports"
)

// MessageHandler handles client-to-admin messaging endpoints.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type sendMessageResponse struct {
	Message string `json:"message"`
}

// Send stores a message from the authenticated client. Sender identity comes
// from the token claims, not the body.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message content"
// @Success      201   {object}  sendMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	subjectID, username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Error: "Validation failed", Details: err.Error()})
	}

	if _, err := h.service.Send(c.Request().Context(), subjectID, username, req.Content); err != nil {
		return err
	}

	metrics.MessagesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, sendMessageResponse{Message: "Message sent successfully"})
}

// List returns all messages, newest first.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Message
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}
