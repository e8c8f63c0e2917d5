package services

import (
	"context"

	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]dto.ProjectReadDto, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectReadDto, 0, len(projects))
	for i := range projects {
		out = append(out, dto.ToProjectReadDto(&projects[i]))
	}
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*dto.ProjectReadDto, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	read := dto.ToProjectReadDto(project)
	return &read, nil
}

func (s *ProjectService) Create(ctx context.Context, in *dto.ProjectCreateDto) (*dto.ProjectReadDto, error) {
	project := &model.Project{Name: in.Name}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	read := dto.ToProjectReadDto(project)
	return &read, nil
}

// Delete removes the project and all of its tasks.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, project)
}
