package models

// PresignRequest names the file the backend should mint an upload target
// for.
type PresignRequest struct {
	FileType string
	FileName string
}

// PresignedUpload is a short-lived upload target. UploadURL accepts one PUT
// of the raw bytes; FileURL is where the object will be readable.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
}

type ProfilePictureResult struct {
	FileURL string      `json:"fileUrl"`
	Profile UserProfile `json:"profile"`
}

type ProfilePictureURLResponse struct {
	Message      string `json:"message"`
	ProfileImage string `json:"profile_image"`
}
