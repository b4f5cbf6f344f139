package gateway

import (
	"fmt"

	"github.com/veeda241/DAC-website/internal/entity"
)

// Row normalization: the remote store's column names drifted across
// deployments (camelCase and snake_case both exist in the wild, and the
// registration link has gone by three names). Each collection gets exactly
// one normalizer that resolves the synonyms in preference order, so the
// inconsistency never leaks past this file.

func field(row map[string]any, names ...string) string {
	for _, name := range names {
		v, ok := row[name]
		if !ok || v == nil {
			continue
		}
		s := fmt.Sprintf("%v", v)
		if s != "" {
			return s
		}
	}
	return ""
}

func normalizeEvent(row map[string]any) entity.ClubEvent {
	return entity.ClubEvent{
		ID:               field(row, "id"),
		Title:            field(row, "title"),
		Date:             field(row, "date"),
		Description:      field(row, "description"),
		Location:         field(row, "location"),
		ImageURL:         field(row, "imageUrl", "image_url"),
		RegistrationLink: field(row, "registrationLink", "registration_link", "link"),
		ReportURL:        field(row, "reportUrl", "report_url"),
	}
}

func normalizeTask(row map[string]any) entity.Task {
	return entity.Task{
		ID:          field(row, "id"),
		EventID:     field(row, "eventId", "event_id"),
		Title:       field(row, "title"),
		Description: field(row, "description"),
		AssigneeID:  field(row, "assigneeId", "assignee_id"),
		Status:      entity.TaskStatus(field(row, "status")),
		Deadline:    field(row, "deadline"),
	}
}

func normalizeReport(row map[string]any) entity.ClubReport {
	return entity.ClubReport{
		ID:           field(row, "id"),
		Title:        field(row, "title"),
		Date:         field(row, "date"),
		Description:  field(row, "description"),
		ThumbnailURL: field(row, "thumbnailUrl", "thumbnail_url"),
		FileURL:      field(row, "fileUrl", "file_url"),
		EventID:      field(row, "eventId", "event_id"),
	}
}

func normalizePhoto(row map[string]any) entity.Photo {
	return entity.Photo{
		ID:      field(row, "id"),
		URL:     field(row, "url"),
		Caption: field(row, "caption"),
		EventID: field(row, "eventId", "event_id"),
	}
}

func normalizeUser(row map[string]any) entity.User {
	return entity.User{
		ID:     field(row, "id"),
		Name:   field(row, "name"),
		Email:  field(row, "email"),
		Role:   entity.UserRole(field(row, "role")),
		Avatar: field(row, "avatar", "avatar_url"),
	}
}
