package entity

// ClubEvent dates are zero-padded ISO calendar dates (YYYY-MM-DD), so plain
// string comparison orders them correctly.
type ClubEvent struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ImageURL         string `json:"imageUrl,omitempty"`
	RegistrationLink string `json:"registrationLink,omitempty"`
	ReportURL        string `json:"reportUrl,omitempty"`
}
