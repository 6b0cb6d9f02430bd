package dto

// CreateJobReq / UpdateJobReq are the admin job CRUD bodies.
type CreateJobReq struct {
	Title        string `json:"title" binding:"required"`
	Department   string `json:"department" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=full_time contract seasonal"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
}

type UpdateJobReq struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Type         string `json:"type" binding:"omitempty,oneof=full_time contract seasonal"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
	Status       string `json:"status" binding:"omitempty,oneof=open closed"`
}

type CreateApplicationReq struct {
	JobID          uint64 `json:"job_id" binding:"required"`
	ApplicantName  string `json:"applicant_name" binding:"required"`
	ApplicantEmail string `json:"applicant_email" binding:"required,email"`
	ApplicantPhone string `json:"applicant_phone"`
	CoverLetter    string `json:"cover_letter"`
	ResumeURL      string `json:"resume_url" binding:"omitempty,url"`
}

type UpdateApplicationStatusReq struct {
	Status string `json:"status" binding:"required,oneof=submitted reviewing shortlisted rejected"`
}

type SaveJobReq struct {
	ProfileID uint64 `json:"profile_id" binding:"required"`
	JobID     uint64 `json:"job_id" binding:"required"`
}
