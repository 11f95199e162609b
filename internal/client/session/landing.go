package session

import (
	"context"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/models"
)

// Route is a front-end location a user is sent to.
type Route string

const (
	RouteHome                Route = "/"
	RouteLogin               Route = "/login"
	RouteWorkerDashboard     Route = "/WorkerDashboard"
	RouteWorkerProfileForm   Route = "/worker/profile-form"
	RouteEmployerDashboard   Route = "/employer-dashboard"
	RouteEmployerProfileForm Route = "/employer/profile-form"
)

// LandingRoute picks where a freshly logged-in user goes: their dashboard
// when their profile exists, the profile form otherwise.
func (s *Session) LandingRoute(ctx context.Context, user *models.User) Route {
	if user == nil {
		return RouteLogin
	}

	var err error
	switch user.Role {
	case models.RoleWorker:
		if _, err = s.profiles.WorkerProfile(ctx); err == nil {
			return RouteWorkerDashboard
		}
	case models.RoleEmployer:
		if _, err = s.profiles.EmployerProfiles(ctx); err == nil {
			return RouteEmployerDashboard
		}
	default:
		return RouteHome
	}

	if client.IsSessionLost(err) {
		return RouteLogin
	}
	if user.Role == models.RoleWorker {
		return RouteWorkerProfileForm
	}
	return RouteEmployerProfileForm
}
