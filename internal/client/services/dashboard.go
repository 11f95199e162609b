package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
	"github.com/dmitrijs2005/workforce/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DashboardFailedMessage is the single user-visible message for any failed
// dashboard sub-request.
const DashboardFailedMessage = "Failed to load dashboard data"

// DashboardError hides which sub-request failed behind one message. The
// joined causes remain reachable through errors.Is / errors.As.
type DashboardError struct {
	Err error
}

func (e *DashboardError) Error() string { return DashboardFailedMessage }
func (e *DashboardError) Unwrap() error { return e.Err }

// Invalidator resets the in-memory session after the backend rejected it.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type WorkerDashboard struct {
	Profile     *models.WorkerProfile
	Recommended []models.JobPosting
}

type EmployerDashboard struct {
	Profile            *models.EmployerProfile
	AppliedJobs        []models.AppliedJob
	RecommendedWorkers []models.WorkerProfile
	Workers            []models.WorkerProfile
}

// DashboardService aggregates the reads behind each dashboard. All reads of
// one dashboard are issued concurrently and the result is returned only
// after every one of them has finished.
type DashboardService struct {
	profiles    ProfileService
	jobs        JobService
	invalidator Invalidator
	log         logging.Logger
}

func NewDashboardService(profiles ProfileService, jobs JobService, inv Invalidator, log logging.Logger) *DashboardService {
	if log == nil {
		log = logging.Nop()
	}
	return &DashboardService{profiles: profiles, jobs: jobs, invalidator: inv, log: log}
}

func (d *DashboardService) Worker(ctx context.Context) (*WorkerDashboard, error) {
	var (
		g    errgroup.Group
		out  WorkerDashboard
		errs [2]error
	)

	g.Go(func() error {
		out.Profile, errs[0] = d.profiles.WorkerProfile(ctx)
		return errs[0]
	})
	g.Go(func() error {
		out.Recommended, errs[1] = d.jobs.Recommendations(ctx)
		return errs[1]
	})
	_ = g.Wait()

	if err := d.joined(ctx, "worker", errs[:]); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *DashboardService) Employer(ctx context.Context) (*EmployerDashboard, error) {
	var (
		g        errgroup.Group
		out      EmployerDashboard
		profiles []models.EmployerProfile
		errs     [4]error
	)

	g.Go(func() error {
		out.AppliedJobs, errs[0] = d.jobs.Applied(ctx)
		return errs[0]
	})
	g.Go(func() error {
		out.RecommendedWorkers, errs[1] = d.profiles.RecommendedWorkers(ctx)
		return errs[1]
	})
	g.Go(func() error {
		profiles, errs[2] = d.profiles.EmployerProfiles(ctx)
		return errs[2]
	})
	g.Go(func() error {
		out.Workers, errs[3] = d.profiles.ListWorkers(ctx)
		return errs[3]
	})
	_ = g.Wait()

	if err := d.joined(ctx, "employer", errs[:]); err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		out.Profile = &profiles[0]
	}
	return &out, nil
}

func (d *DashboardService) joined(ctx context.Context, kind string, errs []error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	d.log.Warn(ctx, "dashboard fetch failed", "dashboard", kind, "error", err)
	if client.IsSessionLost(err) && d.invalidator != nil {
		d.invalidator.Invalidate(ctx)
	}
	return &DashboardError{Err: err}
}
