package domain

// PresignedUpload is a time-limited storage write URL issued by the backend.
type PresignedUpload struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}
