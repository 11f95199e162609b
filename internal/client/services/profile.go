package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
)

// ProfileService reads and writes worker and employer profiles.
type ProfileService interface {
	WorkerProfile(ctx context.Context) (*models.WorkerProfile, error)
	// EmployerProfiles always returns a slice: the backend answers with a
	// single object, an array, or {"profile": ...} depending on the route.
	EmployerProfiles(ctx context.Context) ([]models.EmployerProfile, error)
	SaveWorkerProfile(ctx context.Context, form models.WorkerProfileForm) error
	SaveEmployerProfile(ctx context.Context, form models.EmployerProfileForm) error
	ListWorkers(ctx context.Context) ([]models.WorkerProfile, error)
	ListEmployers(ctx context.Context) ([]models.EmployerProfile, error)
	RecommendedWorkers(ctx context.Context) ([]models.WorkerProfile, error)
}

type profileService struct {
	client client.Client
}

func NewProfileService(c client.Client) ProfileService {
	return &profileService{client: c}
}

func (s *profileService) WorkerProfile(ctx context.Context) (*models.WorkerProfile, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/users/worker/profile", &raw); err != nil {
		return nil, err
	}
	var p models.WorkerProfile
	if err := decodeObject(raw, "profile", &p); err != nil {
		return nil, fmt.Errorf("decode worker profile: %w", err)
	}
	return &p, nil
}

func (s *profileService) EmployerProfiles(ctx context.Context) ([]models.EmployerProfile, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/users/employer/profile", &raw); err != nil {
		return nil, err
	}
	v, _ := envelope(raw, "profile")
	profiles, err := decodeList[models.EmployerProfile](v, "")
	if err != nil {
		return nil, fmt.Errorf("decode employer profile: %w", err)
	}
	return profiles, nil
}

func (s *profileService) SaveWorkerProfile(ctx context.Context, form models.WorkerProfileForm) error {
	return s.client.Post(ctx, "/users/worker/profile", form, nil)
}

func (s *profileService) SaveEmployerProfile(ctx context.Context, form models.EmployerProfileForm) error {
	return s.client.Post(ctx, "/users/employer/profile", form, nil)
}

func (s *profileService) ListWorkers(ctx context.Context) ([]models.WorkerProfile, error) {
	return getList[models.WorkerProfile](ctx, s.client, "/profiles/workers", "workers")
}

func (s *profileService) ListEmployers(ctx context.Context) ([]models.EmployerProfile, error) {
	return getList[models.EmployerProfile](ctx, s.client, "/profiles/employers", "employers")
}

func (s *profileService) RecommendedWorkers(ctx context.Context) ([]models.WorkerProfile, error) {
	return getList[models.WorkerProfile](ctx, s.client, "/recommendation/workers", "recommended_workers")
}

func getList[T any](ctx context.Context, c client.Client, path, key string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw, key)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}
