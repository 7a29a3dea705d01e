package model

type UploadState string

const (
	UploadNotStarted UploadState = "not_started"
	UploadUploading  UploadState = "uploading"
	UploadUploaded   UploadState = "uploaded"
	UploadFailed     UploadState = "failed"
)

type StagedFileDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ContentType string      `json:"content_type"`
	Size        int64       `json:"size"`
	State       UploadState `json:"state"`
	URL         string      `json:"url,omitempty"`
	PreviewURL  string      `json:"preview_url,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type StageResponse struct {
	Accepted   []StagedFileDTO `json:"accepted"`
	Rejections []Notice        `json:"rejections"`
	Limit      *Notice         `json:"limit,omitempty"`
	Files      []StagedFileDTO `json:"files"`
}

type UploadResponse struct {
	URLs   []string        `json:"urls"`
	Files  []StagedFileDTO `json:"files"`
	Failed int             `json:"failed"`
	Kind   string          `json:"kind,omitempty"`
	Notice Notice          `json:"notice"`
}
