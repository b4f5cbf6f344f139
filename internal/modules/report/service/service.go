package report

import (
	"context"
	"fmt"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/report/dto"
	search "github.com/veeda241/DAC-website/internal/modules/search/service"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

const defaultThumbnail = "https://placehold.co/400x300/1e293b/a5b4fc?text=PDF+Report"

type ReportService interface {
	List() []entity.ClubReport
	Create(ctx context.Context, actor *entity.User, req dto.CreateReportRequest) (*entity.ClubReport, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
}

type reportService struct {
	gw       gateway.Gateway
	club     *state.Club
	perms    session.PermissionChecker
	notifier *notify.Notifier
	index    search.IndexService
	now      func() time.Time
}

func NewReportService(gw gateway.Gateway, club *state.Club, perms session.PermissionChecker, notifier *notify.Notifier, index search.IndexService) ReportService {
	return &reportService{
		gw:       gw,
		club:     club,
		perms:    perms,
		notifier: notifier,
		index:    index,
		now:      time.Now,
	}
}

func (s *reportService) List() []entity.ClubReport {
	return s.club.Reports()
}

func (s *reportService) Create(ctx context.Context, actor *entity.User, req dto.CreateReportRequest) (*entity.ClubReport, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	candidate := entity.ClubReport{
		Title:        req.Title,
		Date:         defaultString(req.Date, s.now().Format("2006-01-02")),
		Description:  defaultString(req.Description, "PDF Report"),
		ThumbnailURL: defaultString(req.ThumbnailURL, defaultThumbnail),
		FileURL:      req.FileURL,
		EventID:      req.EventID,
	}

	created := s.gw.CreateReport(ctx, candidate)
	if created == nil {
		s.notifier.Error("Failed to publish report.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.PrependReport(*created)
	s.club.RecordActivity(actor.ID, "Published Report", created.Title)
	s.notifier.Success("Report published successfully!")
	s.index.IndexReport(created)
	return created, nil
}

func (s *reportService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !s.perms.CanManageContent(actor) {
		return apperror.ErrForbidden
	}

	found := false
	for _, r := range s.club.Reports() {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		return apperror.ErrNotFound
	}

	if !s.gw.DeleteReport(ctx, id) {
		s.notifier.Error("Failed to delete report.")
		return apperror.ErrGatewayFailed
	}

	s.club.RemoveReport(id)
	s.club.RecordActivity(actor.ID, "Deleted Report", fmt.Sprintf("Report with ID %s removed.", id))
	s.notifier.Success("Report deleted successfully")
	s.index.RemoveReport(id)
	return nil
}

func defaultString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
