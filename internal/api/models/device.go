package models

// Device is the API representation of a registered push device.
type Device struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	Platform  string    `json:"platform"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// DeviceRegisterRequest is the body for POST /api/notifications/register.
type DeviceRegisterRequest struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Platform string `json:"platform"`
}

// DeviceRegisterResponse wraps the registered device.
type DeviceRegisterResponse struct {
	Success bool   `json:"success"`
	Device  Device `json:"device"`
}
