package models

type CreateJobRequest struct {
	JobTitle         string `json:"job_title"`
	JobDescription   string `json:"job_description"`
	JobType          string `json:"job_type"`
	JobMode          string `json:"job_mode"`
	ExperienceLevel  string `json:"experience_level"`
	Pay              string `json:"pay"`
	CompanyName      string `json:"company_name"`
	CompanyLocation  string `json:"company_location"`
	Status           string `json:"status"`
	WorkingHours     string `json:"working_hours"`
	Qualifications   string `json:"qualifications"`
	Experience       string `json:"experience"`
	LastDateToApply  string `json:"last_date_to_apply"`
	ContactNumber    string `json:"contact_number"`
	RoleSummary      string `json:"role_summary"`
	Responsibilities string `json:"responsibilities"`
	AboutCompany     string `json:"about_company"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateTaskRequest struct {
	JobTitle       string `json:"job_title" form:"job_title"`
	JobDescription string `json:"job_description" form:"job_description"`
	Budget         string `json:"budget" form:"budget"`
	ContactNumber  string `json:"contact_number" form:"contact_number"`
	Category       string `json:"category" form:"category"`
	Address        string `json:"address" form:"address"`
	Latitude       string `json:"latitude" form:"latitude"`
	Longitude      string `json:"longitude" form:"longitude"`
}

type ApplicationResponse struct {
	ID            string `json:"id"`
	JobID         string `json:"job_id"`
	ApplicantID   string `json:"applicant_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	City          string `json:"city"`
	JobTitle      string `json:"job_title"`
	Experience    string `json:"experience"`
	Description   string `json:"description"`
	PortfolioLink string `json:"portfolio_link"`
	ResumeFile    string `json:"resume_file"`
	Status        string `json:"status"`
	CVScore       int    `json:"cv_score"`
	MatchScore    int    `json:"match_score"`
	Feedback      string `json:"feedback"`
}
