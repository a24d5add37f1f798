package service

import (
	"context"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo"
)

type Project struct {
	ProjectRepo          *repo.Project
	ActivityRepo         *repo.Activity
	ObjectiveRepo        *repo.Objective
	ProjectObjectiveRepo *repo.ProjectObjective
}

func NewProject(
	projectRepo *repo.Project,
	activityRepo *repo.Activity,
	objectiveRepo *repo.Objective,
	projectObjectiveRepo *repo.ProjectObjective,
) *Project {
	return &Project{
		ProjectRepo:          projectRepo,
		ActivityRepo:         activityRepo,
		ObjectiveRepo:        objectiveRepo,
		ProjectObjectiveRepo: projectObjectiveRepo,
	}
}

func (s *Project) GetProjectActivities(ctx context.Context, projectId int) ([]*model.Activity, error) {
	if _, err := s.ProjectRepo.GetProjectById(ctx, projectId); err != nil {
		return nil, err
	}
	return s.ActivityRepo.GetActivitiesByProjectId(ctx, projectId)
}

// LinkObjective creates the project-level bridge row. Per-activity rows are
// materialized lazily on first read of an activity's objectives, not here.
func (s *Project) LinkObjective(ctx context.Context, projectId, objectiveId int) (*model.ProjectObjective, error) {
	if _, err := s.ProjectRepo.GetProjectById(ctx, projectId); err != nil {
		return nil, err
	}
	if _, err := s.ObjectiveRepo.GetObjectiveById(ctx, objectiveId); err != nil {
		return nil, err
	}

	pair := &model.ProjectObjective{
		ProjectID:   projectId,
		ObjectiveID: objectiveId,
	}
	if err := s.ProjectObjectiveRepo.CreateProjectObjective(ctx, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *Project) UnlinkObjective(ctx context.Context, projectId, objectiveId int) error {
	return s.ProjectObjectiveRepo.DeleteProjectObjective(ctx, projectId, objectiveId)
}
