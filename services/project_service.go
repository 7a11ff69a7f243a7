package services

import (
	"context"
	"strings"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/repositories"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"
)

// ProjectService manages the caller's own projects. Requests reaching it have already
// passed validation; a project that is absent or owned by someone else is ErrNotFound.
type ProjectService interface {
	List(ctx context.Context, s *models.Session) ([]models.Project, error)
	Create(ctx context.Context, s *models.Session, req models.CreateProjectRequest) (*models.Project, error)
	Get(ctx context.Context, s *models.Session, id string) (*models.Project, error)
	Update(ctx context.Context, s *models.Session, id string, req models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, s *models.Session, id string) error
}

type projectService struct {
	repo repositories.ProjectRepository
	log  *redislog.Logger
}

func NewProjectService(repo repositories.ProjectRepository, rlog *redislog.Logger) ProjectService {
	return &projectService{repo: repo, log: rlog}
}

func (s *projectService) List(ctx context.Context, sess *models.Session) ([]models.Project, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	items, err := s.repo.ListByOwner(ctx, sess.UserID)
	if err != nil {
		s.log.Error("list projects db error", map[string]string{"user_id": sess.UserID, "err": err.Error()})
		return nil, apperrors.Upstream("list projects", err)
	}
	return items, nil
}

func (s *projectService) Create(ctx context.Context, sess *models.Session, req models.CreateProjectRequest) (*models.Project, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	start, err := core.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate", "StartDate must be a valid date")
	}
	p := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      models.StatusActive,
		Priority:    models.PriorityMedium,
		StartDate:   start,
		UserID:      sess.UserID,
	}
	if req.Status != "" {
		p.Status = models.Status(req.Status)
	}
	if req.Priority != "" {
		p.Priority = models.Priority(req.Priority)
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := core.ParseDate(*req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("endDate", "EndDate must be a valid date")
		}
		p.EndDate = &end
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("create project db error", map[string]string{"user_id": sess.UserID, "err": err.Error()})
		return nil, apperrors.Upstream("create project", err)
	}
	s.log.Info("project created", map[string]string{"user_id": sess.UserID, "project_id": p.ID})
	return p, nil
}

func (s *projectService) Get(ctx context.Context, sess *models.Session, id string) (*models.Project, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.findOwned(ctx, sess, id)
}

// Update applies only the fields present in req. An explicit null endDate clears it.
func (s *projectService) Update(ctx context.Context, sess *models.Session, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	p, err := s.findOwned(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Status != nil {
		p.Status = models.Status(*req.Status)
	}
	if req.Priority != nil {
		p.Priority = models.Priority(*req.Priority)
	}
	if req.StartDate != nil {
		start, err := core.ParseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("startDate", "StartDate must be a valid date")
		}
		p.StartDate = start
	}
	if req.EndDate.Set {
		if req.EndDate.Null || req.EndDate.Value == "" {
			p.EndDate = nil
		} else {
			end, err := core.ParseDate(req.EndDate.Value)
			if err != nil {
				return nil, apperrors.NewValidationError("endDate", "EndDate must be a valid date")
			}
			p.EndDate = &end
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.log.Error("update project db error", map[string]string{"project_id": id, "err": err.Error()})
		return nil, apperrors.Upstream("update project", err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, sess *models.Session, id string) error {
	if sess == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.repo.DeleteOwned(ctx, id, sess.UserID); err != nil {
		if repositories.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		s.log.Error("delete project db error", map[string]string{"project_id": id, "err": err.Error()})
		return apperrors.Upstream("delete project", err)
	}
	s.log.Info("project deleted", map[string]string{"user_id": sess.UserID, "project_id": id})
	return nil
}

func (s *projectService) findOwned(ctx context.Context, sess *models.Session, id string) (*models.Project, error) {
	p, err := s.repo.FindOwned(ctx, id, sess.UserID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		s.log.Error("find project db error", map[string]string{"project_id": id, "err": err.Error()})
		return nil, apperrors.Upstream("find project", err)
	}
	return p, nil
}
