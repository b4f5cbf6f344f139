// Package state owns the session-scoped working set: every collection the
// dashboard renders, the append-only activity log, and the active user.
// Mutation services splice these collections only after the gateway has
// confirmed the corresponding remote write.
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veeda241/DAC-website/internal/entity"
)

// Club is the single explicit state container. All access goes through its
// methods; the lock reproduces the run-to-completion guarantee the original
// single-threaded design relied on.
type Club struct {
	mu sync.RWMutex

	currentUser *entity.User

	users   []entity.User
	events  []entity.ClubEvent
	tasks   []entity.Task
	reports []entity.ClubReport
	photos  []entity.Photo

	activity []entity.ActivityEntry
}

func New() *Club {
	return &Club{}
}

// Load replaces every collection with the reconciled working set. Called
// once at startup, before the server accepts requests.
func (c *Club) Load(users []entity.User, events []entity.ClubEvent, tasks []entity.Task, reports []entity.ClubReport, photos []entity.Photo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = users
	c.events = events
	c.tasks = tasks
	c.reports = reports
	c.photos = photos
}

// --- session user ---

// SetCurrentUser marks the active session user. Idempotent for the same
// user.
func (c *Club) SetCurrentUser(u entity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := u
	c.currentUser = &copied
}

// ClearCurrentUser ends the session. The activity log is untouched.
func (c *Club) ClearCurrentUser() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = nil
}

// CurrentUser returns a copy of the active user, or nil for the anonymous
// public view.
func (c *Club) CurrentUser() *entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentUser == nil {
		return nil
	}
	copied := *c.currentUser
	return &copied
}

// --- users ---

func (c *Club) Users() []entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.users)
}

func (c *Club) UserByID(id string) (entity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// UserByEmail matches case-insensitively, the way the login form does.
func (c *Club) UserByEmail(email string) (entity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return entity.User{}, false
}

func (c *Club) AppendUser(u entity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = append(c.users, u)
}

// ReplaceUser swaps the stored record by id; the active session user is
// refreshed when it is the one being replaced.
func (c *Club) ReplaceUser(u entity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.users {
		if c.users[i].ID == u.ID {
			c.users[i] = u
			break
		}
	}
	if c.currentUser != nil && c.currentUser.ID == u.ID {
		copied := u
		c.currentUser = &copied
	}
}

// RemoveUser deletes the record and, as the local compensating action,
// unassigns every task that pointed at it. Callers must invoke this only
// after the gateway confirmed the remote delete.
func (c *Club) RemoveUser(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = removeByID(c.users, id, func(u entity.User) string { return u.ID })
	for i := range c.tasks {
		if c.tasks[i].AssigneeID == id {
			c.tasks[i].AssigneeID = ""
		}
	}
}

// --- events ---

func (c *Club) Events() []entity.ClubEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.events)
}

func (c *Club) EventByID(id string) (entity.ClubEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return entity.ClubEvent{}, false
}

func (c *Club) AppendEvent(e entity.ClubEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *Club) ReplaceEvent(e entity.ClubEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.events {
		if c.events[i].ID == e.ID {
			c.events[i] = e
			break
		}
	}
}

// RemoveEvent deletes the event only. Tasks and photos that reference it
// keep their dangling eventId; that soft-integrity gap is deliberate.
func (c *Club) RemoveEvent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = removeByID(c.events, id, func(e entity.ClubEvent) string { return e.ID })
}

// --- tasks ---

func (c *Club) Tasks() []entity.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.tasks)
}

func (c *Club) TaskByID(id string) (entity.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Task{}, false
}

func (c *Club) AppendTask(t entity.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append(c.tasks, t)
}

func (c *Club) ReplaceTask(t entity.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			break
		}
	}
}

func (c *Club) RemoveTask(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = removeByID(c.tasks, id, func(t entity.Task) string { return t.ID })
}

// --- reports ---

func (c *Club) Reports() []entity.ClubReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.reports)
}

// PrependReport puts a fresh upload at the top of the list, matching the
// date-descending presentation order.
func (c *Club) PrependReport(r entity.ClubReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append([]entity.ClubReport{r}, c.reports...)
}

func (c *Club) RemoveReport(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = removeByID(c.reports, id, func(r entity.ClubReport) string { return r.ID })
}

// --- photos ---

func (c *Club) Photos() []entity.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.photos)
}

func (c *Club) PrependPhoto(p entity.Photo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos = append([]entity.Photo{p}, c.photos...)
}

func (c *Club) RemovePhoto(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos = removeByID(c.photos, id, func(p entity.Photo) string { return p.ID })
}

// --- activity log ---

// RecordActivity appends one entry attributed to the given actor. Entries
// are never edited or removed for the lifetime of the process.
func (c *Club) RecordActivity(userID, action, details string) {
	if userID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activity = append(c.activity, entity.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func (c *Club) Activity() []entity.ActivityEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.activity)
}

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
