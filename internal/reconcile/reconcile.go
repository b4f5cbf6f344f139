// Package reconcile merges the static seed catalog with rows fetched from
// the remote store into one de-duplicated working set. Every function here
// is pure: the same inputs always produce the same output, and no input
// slice is mutated.
package reconcile

import (
	"sort"
	"strings"

	"github.com/veeda241/DAC-website/internal/entity"
)

// KeyFunc yields the dedup keys a record answers to. A live record matches
// an existing one when any key collides.
type KeyFunc[T any] func(T) []string

// MergeFunc folds a live record onto the seed record it matched. Live
// fields win unless empty, in which case the seed value is retained.
type MergeFunc[T any] func(seed, live T) T

// Merge starts from a copy of seed and walks live in order: unmatched
// records are appended, matched ones are merged in place. The result never
// contains two records sharing a key.
func Merge[T any](seed, live []T, keys KeyFunc[T], merge MergeFunc[T]) []T {
	out := make([]T, len(seed))
	copy(out, seed)

	index := map[string]int{}
	for i, rec := range out {
		for _, k := range keys(rec) {
			index[k] = i
		}
	}

	for _, rec := range live {
		pos := -1
		for _, k := range keys(rec) {
			if i, ok := index[k]; ok {
				pos = i
				break
			}
		}
		if pos < 0 {
			out = append(out, rec)
			pos = len(out) - 1
		} else {
			out[pos] = merge(out[pos], rec)
		}
		for _, k := range keys(out[pos]) {
			index[k] = pos
		}
	}

	return out
}

func pick(live, seed string) string {
	if live != "" {
		return live
	}
	return seed
}

// MergeEvents dedups by id and by case-insensitive title, then sorts by
// date ascending. ISO dates are zero-padded so lexicographic order is
// calendar order.
func MergeEvents(seed, live []entity.ClubEvent) []entity.ClubEvent {
	merged := Merge(seed, live,
		func(e entity.ClubEvent) []string {
			keys := []string{"id:" + e.ID}
			if t := strings.ToLower(strings.TrimSpace(e.Title)); t != "" {
				keys = append(keys, "title:"+t)
			}
			return keys
		},
		func(seed, live entity.ClubEvent) entity.ClubEvent {
			return entity.ClubEvent{
				ID:               pick(live.ID, seed.ID),
				Title:            pick(live.Title, seed.Title),
				Date:             pick(live.Date, seed.Date),
				Description:      pick(live.Description, seed.Description),
				Location:         pick(live.Location, seed.Location),
				ImageURL:         pick(live.ImageURL, seed.ImageURL),
				RegistrationLink: pick(live.RegistrationLink, seed.RegistrationLink),
				ReportURL:        pick(live.ReportURL, seed.ReportURL),
			}
		})
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	return merged
}

// MergeReports dedups by id and sorts by date descending (newest first).
func MergeReports(seed, live []entity.ClubReport) []entity.ClubReport {
	merged := Merge(seed, live,
		func(r entity.ClubReport) []string { return []string{r.ID} },
		func(seed, live entity.ClubReport) entity.ClubReport {
			return entity.ClubReport{
				ID:           pick(live.ID, seed.ID),
				Title:        pick(live.Title, seed.Title),
				Date:         pick(live.Date, seed.Date),
				Description:  pick(live.Description, seed.Description),
				ThumbnailURL: pick(live.ThumbnailURL, seed.ThumbnailURL),
				FileURL:      pick(live.FileURL, seed.FileURL),
				EventID:      pick(live.EventID, seed.EventID),
			}
		})
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Date > merged[j].Date })
	return merged
}

// MergeUsers dedups by id and case-insensitive email, keeping the seed
// admin account present even when the live store returns its own copy.
func MergeUsers(seed, live []entity.User) []entity.User {
	return Merge(seed, live,
		func(u entity.User) []string {
			keys := []string{"id:" + u.ID}
			if e := strings.ToLower(strings.TrimSpace(u.Email)); e != "" {
				keys = append(keys, "email:"+e)
			}
			return keys
		},
		func(seed, live entity.User) entity.User {
			role := live.Role
			if role == "" {
				role = seed.Role
			}
			return entity.User{
				ID:     pick(live.ID, seed.ID),
				Name:   pick(live.Name, seed.Name),
				Email:  pick(live.Email, seed.Email),
				Role:   role,
				Avatar: pick(live.Avatar, seed.Avatar),
			}
		})
}

// MergeTasks dedups by id, insertion order.
func MergeTasks(seed, live []entity.Task) []entity.Task {
	return Merge(seed, live,
		func(t entity.Task) []string { return []string{t.ID} },
		func(seed, live entity.Task) entity.Task {
			status := live.Status
			if status == "" {
				status = seed.Status
			}
			return entity.Task{
				ID:          pick(live.ID, seed.ID),
				EventID:     pick(live.EventID, seed.EventID),
				Title:       pick(live.Title, seed.Title),
				Description: pick(live.Description, seed.Description),
				AssigneeID:  pick(live.AssigneeID, seed.AssigneeID),
				Status:      status,
				Deadline:    pick(live.Deadline, seed.Deadline),
			}
		})
}

// MergePhotos dedups by id, insertion order.
func MergePhotos(seed, live []entity.Photo) []entity.Photo {
	return Merge(seed, live,
		func(p entity.Photo) []string { return []string{p.ID} },
		func(seed, live entity.Photo) entity.Photo {
			return entity.Photo{
				ID:      pick(live.ID, seed.ID),
				URL:     pick(live.URL, seed.URL),
				Caption: pick(live.Caption, seed.Caption),
				EventID: pick(live.EventID, seed.EventID),
			}
		})
}

// PartitionEvents splits events into upcoming (date >= today, ascending)
// and past (date < today, descending). Today is injected so the split stays
// deterministic under test.
func PartitionEvents(events []entity.ClubEvent, today string) (upcoming, past []entity.ClubEvent) {
	for _, e := range events {
		if e.Date >= today {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	sort.SliceStable(past, func(i, j int) bool { return past[i].Date > past[j].Date })
	return upcoming, past
}
