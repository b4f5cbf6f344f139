package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/event/dto"
	search "github.com/veeda241/DAC-website/internal/modules/search/service"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/reconcile"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

type EventService interface {
	List(filter string) dto.EventListResponse
	Create(ctx context.Context, actor *entity.User, req dto.CreateEventRequest) (*entity.ClubEvent, error)
	Update(ctx context.Context, actor *entity.User, id string, req dto.UpdateEventRequest) (*entity.ClubEvent, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
}

type eventService struct {
	gw       gateway.Gateway
	club     *state.Club
	perms    session.PermissionChecker
	notifier *notify.Notifier
	index    search.IndexService
	now      func() time.Time
}

func NewEventService(gw gateway.Gateway, club *state.Club, perms session.PermissionChecker, notifier *notify.Notifier, index search.IndexService) EventService {
	return &eventService{
		gw:       gw,
		club:     club,
		perms:    perms,
		notifier: notifier,
		index:    index,
		now:      time.Now,
	}
}

func (s *eventService) List(filter string) dto.EventListResponse {
	events := s.club.Events()

	if filter != "" {
		needle := strings.ToLower(filter)
		kept := events[:0:0]
		for _, e := range events {
			if strings.Contains(strings.ToLower(e.Title), needle) ||
				strings.Contains(strings.ToLower(e.Description), needle) {
				kept = append(kept, e)
			}
		}
		events = kept
	}

	today := s.now().Format("2006-01-02")
	upcoming, past := reconcile.PartitionEvents(events, today)
	return dto.EventListResponse{Events: events, Upcoming: upcoming, Past: past}
}

func (s *eventService) Create(ctx context.Context, actor *entity.User, req dto.CreateEventRequest) (*entity.ClubEvent, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	candidate := entity.ClubEvent{
		Title:            req.Title,
		Date:             req.Date,
		Description:      req.Description,
		Location:         defaultString(req.Location, "TBD"),
		ImageURL:         defaultString(req.ImageURL, placeholderImage()),
		RegistrationLink: req.RegistrationLink,
		ReportURL:        req.ReportURL,
	}

	created := s.gw.CreateEvent(ctx, candidate)
	if created == nil {
		s.notifier.Error("Failed to create event.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.AppendEvent(*created)
	s.club.RecordActivity(actor.ID, "Created Event", created.Title)
	s.notifier.Success("Event created successfully!")
	s.index.IndexEvent(created)
	return created, nil
}

func (s *eventService) Update(ctx context.Context, actor *entity.User, id string, req dto.UpdateEventRequest) (*entity.ClubEvent, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	existing, ok := s.club.EventByID(id)
	if !ok {
		return nil, apperror.ErrNotFound
	}

	candidate := entity.ClubEvent{
		ID:               id,
		Title:            req.Title,
		Date:             req.Date,
		Description:      req.Description,
		Location:         defaultString(req.Location, "TBD"),
		ImageURL:         defaultString(req.ImageURL, existing.ImageURL),
		RegistrationLink: req.RegistrationLink,
		ReportURL:        defaultString(req.ReportURL, existing.ReportURL),
	}

	updated := s.gw.UpdateEvent(ctx, candidate)
	if updated == nil {
		s.notifier.Error("Failed to save event to database")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.ReplaceEvent(*updated)
	s.club.RecordActivity(actor.ID, "Updated Event", updated.Title)
	s.notifier.Success("Event updated and saved!")
	s.index.IndexEvent(updated)
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !s.perms.CanManageContent(actor) {
		return apperror.ErrForbidden
	}

	if _, ok := s.club.EventByID(id); !ok {
		return apperror.ErrNotFound
	}

	if !s.gw.DeleteEvent(ctx, id) {
		s.notifier.Error("Failed to delete event.")
		return apperror.ErrGatewayFailed
	}

	// Tasks and photos referencing the event keep their dangling eventId.
	s.club.RemoveEvent(id)
	s.club.RecordActivity(actor.ID, "Deleted Event", fmt.Sprintf("Event with ID %s removed.", id))
	s.notifier.Success("Event deleted successfully")
	s.index.RemoveEvent(id)
	return nil
}

func defaultString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func placeholderImage() string {
	return fmt.Sprintf("https://picsum.photos/800/400?random=%d", time.Now().UnixMilli())
}
