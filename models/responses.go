package models

import "time"

// SettingsResponse is returned by the settings endpoints.
type SettingsResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message,omitempty"`
	Settings Settings `json:"settings"`
}

// DevicesResponse lists the registered devices. API keys are in their
// encrypted form.
type DevicesResponse struct {
	Status  string   `json:"status"`
	Devices []Device `json:"devices"`
	Groups  []string `json:"groups"`
}

// DeviceResponse carries a single device.
type DeviceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Device  Device `json:"device"`
}

// ConnectivityResponse reports a connectivity test. Status is "success"
// only when the firewall answered with a valid response.
type ConnectivityResponse struct {
	Status string `json:"status"`
	ConnectivityResult
}

// LoginResponse is returned by a successful login. The session itself
// travels in the session cookie.
type LoginResponse struct {
	Status             string `json:"status"`
	Username           string `json:"username"`
	MustChangePassword bool   `json:"must_change_password"`
}

// AuthStatusResponse is returned by the auth status endpoint.
type AuthStatusResponse struct {
	Status string `json:"status"`
	AuthStatus
}

// MessageResponse is a status with a human-readable message.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
