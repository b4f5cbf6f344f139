// Package gatewaytest provides an in-memory Gateway for service tests.
package gatewaytest

import (
	"context"
	"fmt"

	"github.com/veeda241/DAC-website/internal/entity"
)

// Fake implements gateway.Gateway. With Fail set, every mutation returns
// its failure value (nil / false), mirroring an unreachable backend.
// Calls counts every mutation attempt, including failed ones.
type Fake struct {
	Fail  bool
	Calls int

	nextID int
}

func (f *Fake) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *Fake) Online() bool { return true }

func (f *Fake) FetchEvents(context.Context) []entity.ClubEvent { return nil }

func (f *Fake) CreateEvent(_ context.Context, e entity.ClubEvent) *entity.ClubEvent {
	f.Calls++
	if f.Fail {
		return nil
	}
	e.ID = f.id("evt")
	return &e
}

func (f *Fake) UpdateEvent(_ context.Context, e entity.ClubEvent) *entity.ClubEvent {
	f.Calls++
	if f.Fail {
		return nil
	}
	return &e
}

func (f *Fake) DeleteEvent(context.Context, string) bool {
	f.Calls++
	return !f.Fail
}

func (f *Fake) FetchTasks(context.Context) []entity.Task { return nil }

func (f *Fake) CreateTask(_ context.Context, t entity.Task) *entity.Task {
	f.Calls++
	if f.Fail {
		return nil
	}
	t.ID = f.id("task")
	return &t
}

func (f *Fake) UpdateTaskStatus(_ context.Context, id string, status entity.TaskStatus) *entity.Task {
	f.Calls++
	if f.Fail {
		return nil
	}
	return &entity.Task{ID: id, Title: "stored title", Status: status}
}

func (f *Fake) DeleteTask(context.Context, string) bool {
	f.Calls++
	return !f.Fail
}

func (f *Fake) FetchReports(context.Context) []entity.ClubReport { return nil }

func (f *Fake) CreateReport(_ context.Context, r entity.ClubReport) *entity.ClubReport {
	f.Calls++
	if f.Fail {
		return nil
	}
	r.ID = f.id("rep")
	return &r
}

func (f *Fake) DeleteReport(context.Context, string) bool {
	f.Calls++
	return !f.Fail
}

func (f *Fake) FetchPhotos(context.Context) []entity.Photo { return nil }

func (f *Fake) CreatePhoto(_ context.Context, p entity.Photo) *entity.Photo {
	f.Calls++
	if f.Fail {
		return nil
	}
	p.ID = f.id("pic")
	return &p
}

func (f *Fake) DeletePhoto(context.Context, string) bool {
	f.Calls++
	return !f.Fail
}

func (f *Fake) FetchUsers(context.Context) []entity.User { return nil }

func (f *Fake) CreateUser(_ context.Context, u entity.User) *entity.User {
	f.Calls++
	if f.Fail {
		return nil
	}
	u.ID = f.id("usr")
	return &u
}

func (f *Fake) UpdateUser(_ context.Context, u entity.User) *entity.User {
	f.Calls++
	if f.Fail {
		return nil
	}
	return &u
}

func (f *Fake) DeleteUser(context.Context, string) bool {
	f.Calls++
	return !f.Fail
}
