package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/workforce/internal/client/models"
	"github.com/dmitrijs2005/workforce/internal/client/services"
)

// Profiles refreshes and prints the profiles attached to the session.
func (a *App) Profiles(ctx context.Context) error {
	if err := a.session.FetchProfiles(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	snap := a.session.Snapshot()
	if snap.WorkerProfile == nil && len(snap.EmployerProfiles) == 0 {
		fmt.Fprintln(a.out, "No profiles yet")
		return nil
	}
	if p := snap.WorkerProfile; p != nil {
		fmt.Fprintf(a.out, "Worker profile: %s", p.Name)
		if len(p.Skills) > 0 {
			fmt.Fprintf(a.out, " [%s]", strings.Join(p.Skills, ", "))
		}
		fmt.Fprintln(a.out)
	}
	for _, p := range snap.EmployerProfiles {
		fmt.Fprintf(a.out, "Employer profile: %s %s\n", p.Name, p.CompanyName)
	}
	return nil
}

// Dashboard prints the dashboard matching the user's role.
func (a *App) Dashboard(ctx context.Context) error {
	role, ok := a.session.UserRole()
	if !ok {
		fmt.Fprintln(a.out, "Log in first")
		return nil
	}

	var err error
	switch role {
	case models.RoleWorker:
		var d *services.WorkerDashboard
		if d, err = a.dashboards.Worker(ctx); err == nil {
			a.printWorkerDashboard(d)
		}
	case models.RoleEmployer:
		var d *services.EmployerDashboard
		if d, err = a.dashboards.Employer(ctx); err == nil {
			a.printEmployerDashboard(d)
		}
	default:
		fmt.Fprintf(a.out, "No dashboard for role %q\n", role)
		return nil
	}
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
	}
	return err
}

func (a *App) printWorkerDashboard(d *services.WorkerDashboard) {
	if d.Profile != nil {
		fmt.Fprintf(a.out, "Profile: %s\n", d.Profile.Name)
	}
	fmt.Fprintln(a.out, "Recommended jobs:")
	a.printJobs(d.Recommended)
}

func (a *App) printEmployerDashboard(d *services.EmployerDashboard) {
	if d.Profile != nil {
		fmt.Fprintf(a.out, "Company: %s\n", d.Profile.CompanyName)
	} else {
		fmt.Fprintln(a.out, "Profile not found. Please complete your profile first.")
	}
	fmt.Fprintf(a.out, "Job posts with applications: %d\n", len(d.AppliedJobs))
	for _, j := range d.AppliedJobs {
		fmt.Fprintf(a.out, "  %s %s\n", j.ID, j.DisplayTitle())
	}
	fmt.Fprintf(a.out, "Recommended workers: %d\n", len(d.RecommendedWorkers))
	fmt.Fprintf(a.out, "All workers: %d\n", len(d.Workers))
}

// Jobs lists open job postings.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.jobs.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load jobs:", userMessage(err))
		return err
	}
	a.printJobs(jobs)
	return nil
}

func (a *App) printJobs(jobs []models.JobPosting) {
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSALARY")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.ID, j.Title, j.JobType, salaryText(j.Salary))
	}
	_ = w.Flush()
}

func salaryText(s *models.Salary) string {
	if s == nil || (s.Min == nil && s.Max == nil) {
		return "-"
	}
	var b strings.Builder
	if s.Min != nil {
		fmt.Fprintf(&b, "%g", *s.Min)
	}
	b.WriteString("-")
	if s.Max != nil {
		fmt.Fprintf(&b, "%g", *s.Max)
	}
	if s.Type != "" {
		b.WriteString(" " + s.Type)
	}
	return b.String()
}

// Apply submits an application for the job with the given id.
func (a *App) Apply(ctx context.Context, jobID string) error {
	if jobID == "" {
		fmt.Fprintln(a.out, "Usage: apply <job-id>")
		return nil
	}
	msg, err := a.jobs.Apply(ctx, models.ID(jobID))
	if err != nil {
		fmt.Fprintln(a.out, "Apply failed:", userMessage(err))
		return err
	}
	if msg == "" {
		msg = "Applied"
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
