package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
)

// JobService covers job listings and applications.
type JobService interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	Recommendations(ctx context.Context) ([]models.JobPosting, error)
	// Apply submits an application and returns the backend's confirmation.
	Apply(ctx context.Context, jobID models.ID) (string, error)
	// Applied lists applications of the current user. The backend answers
	// 404 when there are none; that is reported as an empty list.
	Applied(ctx context.Context) ([]models.AppliedJob, error)
}

type jobService struct {
	client client.Client
}

func NewJobService(c client.Client) JobService {
	return &jobService{client: c}
}

func (s *jobService) List(ctx context.Context) ([]models.JobPosting, error) {
	return getList[models.JobPosting](ctx, s.client, "/jobs/", "jobs")
}

func (s *jobService) Recommendations(ctx context.Context) ([]models.JobPosting, error) {
	return getList[models.JobPosting](ctx, s.client, "/jobs/recommendations", "jobs")
}

type applyRequest struct {
	JobID models.ID `json:"job_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *jobService) Apply(ctx context.Context, jobID models.ID) (string, error) {
	var resp messageResponse
	if err := s.client.Post(ctx, "/application/apply", applyRequest{JobID: jobID}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *jobService) Applied(ctx context.Context) ([]models.AppliedJob, error) {
	jobs, err := getList[models.AppliedJob](ctx, s.client, "/application/applied", "jobs")
	if errors.Is(err, client.ErrNotFound) {
		return nil, nil
	}
	return jobs, err
}
