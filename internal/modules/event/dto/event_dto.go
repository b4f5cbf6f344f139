package dto

import "github.com/veeda241/DAC-website/internal/entity"

type CreateEventRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ImageURL         string `json:"imageUrl"`
	RegistrationLink string `json:"registrationLink"`
	ReportURL        string `json:"reportUrl"`
}

type UpdateEventRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ImageURL         string `json:"imageUrl"`
	RegistrationLink string `json:"registrationLink"`
	ReportURL        string `json:"reportUrl"`
}

type EventListResponse struct {
	Events   []entity.ClubEvent `json:"events"`
	Upcoming []entity.ClubEvent `json:"upcoming"`
	Past     []entity.ClubEvent `json:"past"`
}
