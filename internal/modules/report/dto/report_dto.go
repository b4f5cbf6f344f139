package dto

type CreateReportRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Date         string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description  string `json:"description" binding:"max=2000"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FileURL      string `json:"fileUrl" binding:"required"`
	EventID      string `json:"eventId"`
}
