// Package gateway wraps the remote tabular store behind the degraded
// contract the rest of the portal relies on: fetches return empty slices,
// creates and updates return nil, deletes return false — never an error.
// Callers treat the sentinel values as "operation failed" and surface that
// to the user; nothing here touches in-memory session state.
package gateway

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veeda241/DAC-website/internal/entity"
)

// DefaultTimeout bounds every remote call so a hung backend surfaces as a
// failure toast instead of an unresolved pending state.
const DefaultTimeout = 10 * time.Second

// Gateway is the per-collection remote store contract.
type Gateway interface {
	// Online reports whether a backend is configured. Offline, every call
	// is a no-op returning its failure value.
	Online() bool

	FetchEvents(ctx context.Context) []entity.ClubEvent
	CreateEvent(ctx context.Context, e entity.ClubEvent) *entity.ClubEvent
	UpdateEvent(ctx context.Context, e entity.ClubEvent) *entity.ClubEvent
	DeleteEvent(ctx context.Context, id string) bool

	FetchTasks(ctx context.Context) []entity.Task
	CreateTask(ctx context.Context, t entity.Task) *entity.Task
	UpdateTaskStatus(ctx context.Context, id string, status entity.TaskStatus) *entity.Task
	DeleteTask(ctx context.Context, id string) bool

	FetchReports(ctx context.Context) []entity.ClubReport
	CreateReport(ctx context.Context, r entity.ClubReport) *entity.ClubReport
	DeleteReport(ctx context.Context, id string) bool

	FetchPhotos(ctx context.Context) []entity.Photo
	CreatePhoto(ctx context.Context, p entity.Photo) *entity.Photo
	DeletePhoto(ctx context.Context, id string) bool

	FetchUsers(ctx context.Context) []entity.User
	CreateUser(ctx context.Context, u entity.User) *entity.User
	UpdateUser(ctx context.Context, u entity.User) *entity.User
	DeleteUser(ctx context.Context, id string) bool
}

type sqlGateway struct {
	db      *gorm.DB
	timeout time.Duration
}

// New builds the store-backed gateway. db may be nil (offline mode).
func New(db *gorm.DB, timeout time.Duration) Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &sqlGateway{db: db, timeout: timeout}
}

func (g *sqlGateway) Online() bool {
	return g.db != nil
}

func (g *sqlGateway) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *sqlGateway) fetch(ctx context.Context, table, order string) []map[string]any {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	var rows []map[string]any
	q := g.db.WithContext(ctx).Table(table)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("gateway: fetch %s: %v", table, err)
		return nil
	}
	return rows
}

func (g *sqlGateway) insert(ctx context.Context, table string, payload map[string]any) bool {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	if err := g.db.WithContext(ctx).Table(table).Create(payload).Error; err != nil {
		log.Printf("gateway: create %s: %v", table, err)
		return false
	}
	return true
}

func (g *sqlGateway) update(ctx context.Context, table, id string, payload map[string]any) bool {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	res := g.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(payload)
	if res.Error != nil {
		log.Printf("gateway: update %s %s: %v", table, id, res.Error)
		return false
	}
	if res.RowsAffected == 0 {
		log.Printf("gateway: update %s %s: no matching row", table, id)
		return false
	}
	return true
}

func (g *sqlGateway) remove(ctx context.Context, model any, id string) bool {
	ctx, cancel := g.bound(ctx)
	defer cancel()

	if err := g.db.WithContext(ctx).Where("id = ?", id).Delete(model).Error; err != nil {
		log.Printf("gateway: delete %T %s: %v", model, id, err)
		return false
	}
	return true
}

// --- events ---

func (g *sqlGateway) FetchEvents(ctx context.Context) []entity.ClubEvent {
	out := []entity.ClubEvent{}
	if g.db == nil {
		return out
	}
	for _, row := range g.fetch(ctx, "events", "date asc") {
		out = append(out, normalizeEvent(row))
	}
	return out
}

func (g *sqlGateway) CreateEvent(ctx context.Context, e entity.ClubEvent) *entity.ClubEvent {
	if g.db == nil {
		return nil
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	payload := map[string]any{
		"id":                e.ID,
		"title":             e.Title,
		"date":              e.Date,
		"description":       e.Description,
		"location":          e.Location,
		"image_url":         e.ImageURL,
		"registration_link": e.RegistrationLink,
		"report_url":        e.ReportURL,
	}
	if !g.insert(ctx, "events", payload) {
		return nil
	}
	return &e
}

func (g *sqlGateway) UpdateEvent(ctx context.Context, e entity.ClubEvent) *entity.ClubEvent {
	if g.db == nil {
		return nil
	}
	payload := map[string]any{
		"title":             e.Title,
		"date":              e.Date,
		"description":       e.Description,
		"location":          e.Location,
		"image_url":         e.ImageURL,
		"registration_link": e.RegistrationLink,
		"report_url":        e.ReportURL,
	}
	if !g.update(ctx, "events", e.ID, payload) {
		return nil
	}
	return &e
}

func (g *sqlGateway) DeleteEvent(ctx context.Context, id string) bool {
	if g.db == nil {
		return false
	}
	return g.remove(ctx, &eventRow{}, id)
}

// --- tasks ---

func (g *sqlGateway) FetchTasks(ctx context.Context) []entity.Task {
	out := []entity.Task{}
	if g.db == nil {
		return out
	}
	for _, row := range g.fetch(ctx, "tasks", "deadline asc") {
		out = append(out, normalizeTask(row))
	}
	return out
}

func (g *sqlGateway) CreateTask(ctx context.Context, t entity.Task) *entity.Task {
	if g.db == nil {
		return nil
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	payload := map[string]any{
		"id":          t.ID,
		"event_id":    t.EventID,
		"title":       t.Title,
		"description": t.Description,
		"assignee_id": t.AssigneeID,
		"status":      string(t.Status),
		"deadline":    t.Deadline,
	}
	if !g.insert(ctx, "tasks", payload) {
		return nil
	}
	return &t
}

func (g *sqlGateway) UpdateTaskStatus(ctx context.Context, id string, status entity.TaskStatus) *entity.Task {
	if g.db == nil {
		return nil
	}
	if !g.update(ctx, "tasks", id, map[string]any{"status": string(status)}) {
		return nil
	}

	ctx, cancel := g.bound(ctx)
	defer cancel()
	var row map[string]any
	if err := g.db.WithContext(ctx).Table("tasks").Where("id = ?", id).Take(&row).Error; err != nil {
		log.Printf("gateway: reload task %s: %v", id, err)
		return nil
	}
	t := normalizeTask(row)
	return &t
}

func (g *sqlGateway) DeleteTask(ctx context.Context, id string) bool {
	if g.db == nil {
		return false
	}
	return g.remove(ctx, &taskRow{}, id)
}

// --- reports ---

func (g *sqlGateway) FetchReports(ctx context.Context) []entity.ClubReport {
	out := []entity.ClubReport{}
	if g.db == nil {
		return out
	}
	for _, row := range g.fetch(ctx, "reports", "date desc") {
		out = append(out, normalizeReport(row))
	}
	return out
}

func (g *sqlGateway) CreateReport(ctx context.Context, r entity.ClubReport) *entity.ClubReport {
	if g.db == nil {
		return nil
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	payload := map[string]any{
		"id":            r.ID,
		"title":         r.Title,
		"date":          r.Date,
		"description":   r.Description,
		"thumbnail_url": r.ThumbnailURL,
		"file_url":      r.FileURL,
	}
	// The event association is best-effort: the column is missing from
	// some deployments, so retry without it rather than fail the upload.
	if r.EventID != "" {
		withEvent := map[string]any{}
		for k, v := range payload {
			withEvent[k] = v
		}
		withEvent["event_id"] = r.EventID
		if g.insert(ctx, "reports", withEvent) {
			return &r
		}
		log.Printf("gateway: create report: event_id not persisted, retrying without it")
		r.EventID = ""
	}
	if !g.insert(ctx, "reports", payload) {
		return nil
	}
	return &r
}

func (g *sqlGateway) DeleteReport(ctx context.Context, id string) bool {
	if g.db == nil {
		return false
	}
	return g.remove(ctx, &reportRow{}, id)
}

// --- photos ---

func (g *sqlGateway) FetchPhotos(ctx context.Context) []entity.Photo {
	out := []entity.Photo{}
	if g.db == nil {
		return out
	}
	for _, row := range g.fetch(ctx, "photos", "") {
		out = append(out, normalizePhoto(row))
	}
	return out
}

func (g *sqlGateway) CreatePhoto(ctx context.Context, p entity.Photo) *entity.Photo {
	if g.db == nil {
		return nil
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	payload := map[string]any{
		"id":       p.ID,
		"url":      p.URL,
		"caption":  p.Caption,
		"event_id": p.EventID,
	}
	if !g.insert(ctx, "photos", payload) {
		return nil
	}
	return &p
}

func (g *sqlGateway) DeletePhoto(ctx context.Context, id string) bool {
	if g.db == nil {
		return false
	}
	return g.remove(ctx, &photoRow{}, id)
}

// --- users ---

func (g *sqlGateway) FetchUsers(ctx context.Context) []entity.User {
	out := []entity.User{}
	if g.db == nil {
		return out
	}
	for _, row := range g.fetch(ctx, "users", "") {
		out = append(out, normalizeUser(row))
	}
	return out
}

func (g *sqlGateway) CreateUser(ctx context.Context, u entity.User) *entity.User {
	if g.db == nil {
		return nil
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	payload := map[string]any{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   string(u.Role),
		"avatar": u.Avatar,
	}
	if !g.insert(ctx, "users", payload) {
		return nil
	}
	return &u
}

func (g *sqlGateway) UpdateUser(ctx context.Context, u entity.User) *entity.User {
	if g.db == nil {
		return nil
	}
	payload := map[string]any{
		"name":   u.Name,
		"email":  u.Email,
		"role":   string(u.Role),
		"avatar": u.Avatar,
	}
	if !g.update(ctx, "users", u.ID, payload) {
		return nil
	}
	return &u
}

func (g *sqlGateway) DeleteUser(ctx context.Context, id string) bool {
	if g.db == nil {
		return false
	}
	return g.remove(ctx, &userRow{}, id)
}
