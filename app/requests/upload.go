package requests

// DeleteUploadRequest is the payload for DELETE /api/upload.
type DeleteUploadRequest struct {
	PublicID string `json:"public_id" validate:"required"`
}
