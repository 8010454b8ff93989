package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sportsfollow/sportsfollow/internal/api/models"
	"github.com/sportsfollow/sportsfollow/internal/api/response"
	"github.com/sportsfollow/sportsfollow/internal/device"
	"github.com/sportsfollow/sportsfollow/internal/notification"
)

// NotificationHandler handles device registration and push dispatch endpoints.
type NotificationHandler struct {
	deviceService       *device.Service
	notificationService *notification.Service
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(deviceService *device.Service, notificationService *notification.Service) *NotificationHandler {
	return &NotificationHandler{
		deviceService:       deviceService,
		notificationService: notificationService,
	}
}

// RegisterDevice handles POST /api/notifications/register - upsert a push token.
func (h *NotificationHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var input models.DeviceRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	d, _, err := h.deviceService.Register(r.Context(), input.Token, input.UserID, device.Platform(input.Platform))
	if err != nil {
		if errors.Is(err, device.ErrInvalidInput) {
			response.BadRequest(w, r, err.Error(), nil)
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.DeviceRegisterResponse{
		Success: true,
		Device:  toAPIDevice(d),
	})
}

// SendNotification handles POST /api/notifications/send - push to one user's devices.
func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var input models.NotificationSendRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.notificationService.SendToUser(r.Context(), input.UserID, input.Title, input.Body, input.Data)
	if err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.NotificationSendResponse{
		Success: true,
		Result:  result,
	})
}

// Broadcast handles POST /api/notifications/broadcast - push to every device.
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var input models.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	results, err := h.notificationService.Broadcast(r.Context(), input.Title, input.Body, input.Data)
	if err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.BroadcastResponse{
		Success: true,
		Results: results,
	})
}

func (h *NotificationHandler) writeDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	var dispatchErr *notification.DispatchError
	switch {
	case errors.Is(err, notification.ErrInvalidInput):
		response.BadRequest(w, r, err.Error(), nil)
	case errors.Is(err, notification.ErrNoDevices):
		response.NotFound(w, r, err.Error())
	case errors.As(err, &dispatchErr):
		response.InternalError(w, r, dispatchErr.Error())
	default:
		response.InternalError(w, r, "internal server error")
	}
}

// toAPIDevice converts a domain device into its API representation.
func toAPIDevice(d *device.Device) models.Device {
	return models.Device{
		UserID:    d.UserID,
		Token:     d.Token,
		Platform:  string(d.Platform),
		CreatedAt: models.Timestamp(d.CreatedAt),
		UpdatedAt: models.Timestamp(d.UpdatedAt),
	}
}
