package entity

// ClubReport has no update lifecycle: it is created by upload and removed by
// delete. EventID is a best-effort association; the backing column is not
// guaranteed to exist in every deployment.
type ClubReport struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FileURL      string `json:"fileUrl"`
	EventID      string `json:"eventId,omitempty"`
}
