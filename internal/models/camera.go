package models

// CameraMove instructs the map client to fly the camera to a coordinate.
type CameraMove struct {
	SessionID  string     `json:"session_id"`
	Index      int        `json:"index"`
	Total      int        `json:"total"`
	Coordinate Coordinate `json:"coordinate"`
	DurationMS int64      `json:"duration_ms"`
}
