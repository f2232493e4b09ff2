package service

import (
	"context"
	"strings"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
)

const msgProjectNotFound = "project not found"

type ProjectService struct {
	repo repository.ProjectRepo
}

func NewProjectService(repo repository.ProjectRepo) *ProjectService {
	return &ProjectService{repo: repo}
}

func projectStatusFilter(status string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case "":
		return models.ProjectStatusActive, nil
	case StatusAll:
		return "", nil
	case models.ProjectStatusActive, models.ProjectStatusArchived:
		return s, nil
	default:
		return "", validationError(msgInvalidStatus)
	}
}

func validProjectStatus(s string) bool {
	return s == models.ProjectStatusActive || s == models.ProjectStatusArchived
}

// List returns projects with the given status ("" = active, "all" = any).
func (s *ProjectService) List(ctx context.Context, status string) ([]models.Project, error) {
	filter, err := projectStatusFilter(status)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, internalError("failed to load projects", err)
	}
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (models.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Project{}, notFoundOrInternal(err, msgProjectNotFound, "failed to load project")
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, in models.ProjectPatch) (int64, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return 0, validationError(msgTitleRequired)
	}
	p := models.Project{
		Title:        *in.Title,
		Subtitle:     deref(in.Subtitle),
		Description:  deref(in.Description),
		TechStack:    []string{},
		Icon:         models.DefaultProjectIcon,
		Link:         deref(in.Link),
		Status:       models.ProjectStatusActive,
		DisplayOrder: deref(in.DisplayOrder),
	}
	if in.TechStack != nil {
		p.TechStack = *in.TechStack
	}
	if in.Icon != nil && *in.Icon != "" {
		p.Icon = *in.Icon
	}
	if in.Status != nil {
		if !validProjectStatus(*in.Status) {
			return 0, validationError(msgInvalidStatus)
		}
		p.Status = *in.Status
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, internalError("failed to create project", err)
	}
	return id, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, in models.ProjectPatch) error {
	if in.Empty() {
		return validationError(msgNoFields)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return validationError(msgTitleRequired)
	}
	if in.Status != nil && !validProjectStatus(*in.Status) {
		return validationError(msgInvalidStatus)
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return notFoundOrInternal(err, msgProjectNotFound, "failed to update project")
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err, msgProjectNotFound, "failed to delete project")
	}
	return nil
}
