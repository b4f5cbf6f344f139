package gateway

import "gorm.io/gorm"

// Canonical row shapes for the remote tables, in the store's snake_case
// convention. Reads still go through the per-collection normalizers so
// deployments with older column spellings keep working.

type eventRow struct {
	ID               string `gorm:"column:id;primaryKey"`
	Title            string `gorm:"column:title"`
	Date             string `gorm:"column:date"`
	Description      string `gorm:"column:description"`
	Location         string `gorm:"column:location"`
	ImageURL         string `gorm:"column:image_url"`
	RegistrationLink string `gorm:"column:registration_link"`
	ReportURL        string `gorm:"column:report_url"`
}

func (eventRow) TableName() string { return "events" }

type taskRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	EventID     string `gorm:"column:event_id"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	AssigneeID  string `gorm:"column:assignee_id"`
	Status      string `gorm:"column:status"`
	Deadline    string `gorm:"column:deadline"`
}

func (taskRow) TableName() string { return "tasks" }

// reportRow deliberately omits event_id: the column is not a stable part of
// the deployed schema, so the association is written best-effort at insert
// time instead.
type reportRow struct {
	ID           string `gorm:"column:id;primaryKey"`
	Title        string `gorm:"column:title"`
	Date         string `gorm:"column:date"`
	Description  string `gorm:"column:description"`
	ThumbnailURL string `gorm:"column:thumbnail_url"`
	FileURL      string `gorm:"column:file_url"`
}

func (reportRow) TableName() string { return "reports" }

type photoRow struct {
	ID      string `gorm:"column:id;primaryKey"`
	URL     string `gorm:"column:url"`
	Caption string `gorm:"column:caption"`
	EventID string `gorm:"column:event_id"`
}

func (photoRow) TableName() string { return "photos" }

type userRow struct {
	ID     string `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name"`
	Email  string `gorm:"column:email"`
	Role   string `gorm:"column:role"`
	Avatar string `gorm:"column:avatar"`
}

func (userRow) TableName() string { return "users" }

// Migrate creates or updates the remote tables. Callers skip this when the
// gateway is offline.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&eventRow{},
		&taskRow{},
		&reportRow{},
		&photoRow{},
		&userRow{},
	)
}
