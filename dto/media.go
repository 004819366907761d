package dto

// MediaUploadResponse describes a stored question image.
type MediaUploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}
