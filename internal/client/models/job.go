package models

// Salary is a pay range with its period ("hourly", "weekly", "monthly", "yearly").
type Salary struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Type string   `json:"type,omitempty"`
}

// JobPosting is an open position published by an employer.
type JobPosting struct {
	ID              ID        `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Location        *Location `json:"location,omitempty"`
	Salary          *Salary   `json:"salary,omitempty"`
	EmployerID      ID        `json:"employer_id,omitempty"`
	CompanyName     string    `json:"company_name,omitempty"`
	RequiredSkills  []string  `json:"required_skills,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	PostedDate      string    `json:"posted_date,omitempty"`
	DeadlineDate    string    `json:"deadline_date,omitempty"`
	JobType         string    `json:"job_type,omitempty"`
	Status          string    `json:"status,omitempty"`
}

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application links a worker to a job posting.
type Application struct {
	ID       ID                `json:"id"`
	WorkerID ID                `json:"worker_id,omitempty"`
	JobID    ID                `json:"job_id"`
	Status   ApplicationStatus `json:"status,omitempty"`
}

// AppliedJob is one row of GET /application/applied. Employers get job
// postings back, workers get their applications joined with the job, so
// both field spellings are accepted.
type AppliedJob struct {
	ID          ID                `json:"id"`
	JobID       ID                `json:"jobId,omitempty"`
	Title       string            `json:"title,omitempty"`
	JobTitle    string            `json:"jobTitle,omitempty"`
	CompanyName string            `json:"companyName,omitempty"`
	Description string            `json:"description,omitempty"`
	Status      ApplicationStatus `json:"status,omitempty"`
	AppliedAt   string            `json:"appliedAt,omitempty"`
	Salary      *Salary           `json:"salary,omitempty"`
}

// DisplayTitle returns whichever title spelling the backend filled in.
func (a AppliedJob) DisplayTitle() string {
	if a.Title != "" {
		return a.Title
	}
	return a.JobTitle
}
