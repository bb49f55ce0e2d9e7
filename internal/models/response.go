package models

type HealthResponse struct {
	Status string `json:"status"`
}

type UploadAcceptedResponse struct {
	BatchID string           `json:"batch_id"`
	Files   []UploadTaskInfo `json:"files"`
}

type UploadTaskInfo struct {
	TaskID   string `json:"task_id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

type BatchStatusResponse struct {
	BatchID string           `json:"batch_id"`
	Done    bool             `json:"done"`
	Files   []UploadTaskInfo `json:"files"`
}

type GalleryResponse struct {
	WeddingID string  `json:"wedding_id"`
	Mode      string  `json:"mode"`
	Photos    []Photo `json:"photos"`
}

type GuestbookResponse struct {
	Entries []GuestbookEntry `json:"entries"`
}
