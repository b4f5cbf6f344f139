package entity

type Photo struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	EventID string `json:"eventId"`
}
