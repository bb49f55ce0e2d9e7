package models

type SignGuestbookRequest struct {
	WriterName string `json:"writer_name" example:"Uncle Bob"`
	Message    string `json:"message" example:"Congratulations!"`
}

type SetVisibilityRequest struct {
	Hidden bool `json:"hidden"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
