package dto

type MediaUploadResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
}
