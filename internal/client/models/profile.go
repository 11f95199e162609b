package models

// Location is a postal location used by worker profiles and job postings.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Address is the employer's split street address.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
}

// WorkerProfile is the profile attached to a worker account.
type WorkerProfile struct {
	ID                 ID        `json:"id"`
	UserID             ID        `json:"user_id,omitempty"`
	Name               string    `json:"name"`
	Email              string    `json:"email,omitempty"`
	Age                int       `json:"age,omitempty"`
	YearsExperience    int       `json:"years_experience,omitempty"`
	ContactNumber      string    `json:"contact_number,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	ProfilePicture     string    `json:"profile_picture,omitempty"`
	Skills             []string  `json:"skills,omitempty"`
	DesiredSalary      float64   `json:"desired_salary,omitempty"`
	PreferredJobTitles []string  `json:"preferred_job_titles,omitempty"`
	Location           *Location `json:"location,omitempty"`
}

// EmployerProfile is the profile attached to an employer account.
type EmployerProfile struct {
	ID            ID       `json:"id"`
	UserID        ID       `json:"user_id,omitempty"`
	Name          string   `json:"name"`
	CompanyName   string   `json:"company_name,omitempty"`
	ContactNumber string   `json:"contact_number,omitempty"`
	Email         string   `json:"email,omitempty"`
	Address       *Address `json:"address,omitempty"`
}

// WorkerProfileForm is the body of POST /users/worker/profile.
type WorkerProfileForm struct {
	Name          string `json:"name"`
	Age           int    `json:"age,omitempty"`
	Experience    int    `json:"experience,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Email         string `json:"email,omitempty"`
}

// EmployerProfileForm is the body of POST /users/employer/profile.
// Address is a comma separated "street, city, state" string.
type EmployerProfileForm struct {
	Name          string `json:"name"`
	Company       string `json:"company,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Email         string `json:"email,omitempty"`
}
