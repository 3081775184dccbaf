package test

// ClassifyRequest is the body of POST /test/message. SessionID, when set,
// classifies Text against that session's history.
type ClassifyRequest struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id"`
}

type ClassifyResponse struct {
	Success   bool     `json:"success"`
	Intent    string   `json:"intent,omitempty"`
	NeedsData bool     `json:"needs_data"`
	Text      string   `json:"text"`
	SessionID string   `json:"session_id,omitempty"`
	History   []string `json:"history,omitempty"`
	Error     string   `json:"error,omitempty"`
	Details   string   `json:"details,omitempty"`
}

type ResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ResetResponse reports Success=false when the session did not exist.
type ResetResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
