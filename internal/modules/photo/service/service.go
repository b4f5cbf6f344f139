package photo

import (
	"context"
	"fmt"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/photo/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

type PhotoService interface {
	List() []entity.Photo
	Create(ctx context.Context, actor *entity.User, req dto.CreatePhotoRequest) (*entity.Photo, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
}

type photoService struct {
	gw       gateway.Gateway
	club     *state.Club
	perms    session.PermissionChecker
	notifier *notify.Notifier
}

func NewPhotoService(gw gateway.Gateway, club *state.Club, perms session.PermissionChecker, notifier *notify.Notifier) PhotoService {
	return &photoService{
		gw:       gw,
		club:     club,
		perms:    perms,
		notifier: notifier,
	}
}

func (s *photoService) List() []entity.Photo {
	return s.club.Photos()
}

func (s *photoService) Create(ctx context.Context, actor *entity.User, req dto.CreatePhotoRequest) (*entity.Photo, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	candidate := entity.Photo{
		URL:     req.URL,
		Caption: req.Caption,
		EventID: req.EventID,
	}

	created := s.gw.CreatePhoto(ctx, candidate)
	if created == nil {
		s.notifier.Error("Failed to upload photo.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.PrependPhoto(*created)
	s.club.RecordActivity(actor.ID, "Uploaded Photo", fmt.Sprintf("Added to Gallery: %s", created.Caption))
	s.notifier.Success("Photo uploaded successfully!")
	return created, nil
}

func (s *photoService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !s.perms.CanManageContent(actor) {
		return apperror.ErrForbidden
	}

	found := false
	for _, p := range s.club.Photos() {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return apperror.ErrNotFound
	}

	if !s.gw.DeletePhoto(ctx, id) {
		s.notifier.Error("Failed to delete photo.")
		return apperror.ErrGatewayFailed
	}

	s.club.RemovePhoto(id)
	s.club.RecordActivity(actor.ID, "Deleted Photo", fmt.Sprintf("Photo with ID %s removed.", id))
	s.notifier.Success("Photo deleted successfully")
	return nil
}
