package common

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	// TotalPresent is only set by the per-employee attendance listing.
	TotalPresent *int64 `json:"totalPresent,omitempty"`
}

func NewSuccessResponse(data any) *Response {
	return &Response{Success: true, Data: data}
}

// NewMessageResponse is a success carrying a message and optional data.
func NewMessageResponse(message string, data any) *Response {
	return &Response{Success: true, Message: message, Data: data}
}
