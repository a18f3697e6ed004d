package models

// Bounds enforced on [Settings] before it is persisted.
const (
	MinRefreshInterval = 1
	MaxRefreshInterval = 60
	MinMatchCount      = 1
	MaxMatchCount      = 20
	MinTopAppsCount    = 1
	MaxTopAppsCount    = 10
)

// Settings is the single process-wide dashboard configuration record.
type Settings struct {
	// RefreshInterval is the dashboard polling cadence in seconds.
	RefreshInterval int `json:"refresh_interval"`

	// MatchCount is how many log/threat entries are shown per widget.
	MatchCount int `json:"match_count"`

	// TopAppsCount is the N of the top-N applications widget.
	TopAppsCount int `json:"top_apps_count"`

	// DebugLogging switches the process log level to debug.
	DebugLogging bool `json:"debug_logging"`

	// SelectedDeviceID is the device the dashboard polls. Empty selects the
	// legacy single-device fallback.
	SelectedDeviceID string `json:"selected_device_id"`

	// MonitoredInterface overrides the interface when the device has none.
	MonitoredInterface string `json:"monitored_interface"`

	// TonyMode disables session expiry.
	TonyMode bool `json:"tony_mode"`
}

// DefaultSettings returns the record created on first read.
func DefaultSettings() Settings {
	return Settings{
		RefreshInterval:    15,
		MatchCount:         5,
		TopAppsCount:       5,
		DebugLogging:       false,
		SelectedDeviceID:   "",
		MonitoredInterface: DefaultMonitoredInterface,
		TonyMode:           false,
	}
}

// Normalize clamps every bounded field into its valid range.
func (s Settings) Normalize() Settings {
	s.RefreshInterval = clamp(s.RefreshInterval, MinRefreshInterval, MaxRefreshInterval)
	s.MatchCount = clamp(s.MatchCount, MinMatchCount, MaxMatchCount)
	s.TopAppsCount = clamp(s.TopAppsCount, MinTopAppsCount, MaxTopAppsCount)
	return s
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
