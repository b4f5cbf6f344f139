package dto

type CreatePhotoRequest struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption" binding:"required,max=300"`
	EventID string `json:"eventId"`
}
