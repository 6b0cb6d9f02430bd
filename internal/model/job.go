package model

import "time"

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

type Job struct {
	ID           uint64    `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title;size:128"`
	Department   string    `gorm:"column:department;size:64"`
	Location     string    `gorm:"column:location;size:128"`
	Type         string    `gorm:"column:type;size:32"` // full_time, contract, seasonal
	Description  string    `gorm:"column:description;type:text"`
	Requirements string    `gorm:"column:requirements;type:text"`
	SalaryRange  string    `gorm:"column:salary_range;size:64"`
	Status       string    `gorm:"column:status;size:16;index;default:open"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Job) TableName() string { return "jobs" }

const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

type Application struct {
	ID             uint64    `gorm:"column:id;primaryKey"`
	JobID          uint64    `gorm:"column:job_id;index"`
	ApplicantName  string    `gorm:"column:applicant_name;size:128"`
	ApplicantEmail string    `gorm:"column:applicant_email;size:128"`
	ApplicantPhone string    `gorm:"column:applicant_phone;size:32"`
	CoverLetter    string    `gorm:"column:cover_letter;type:text"`
	ResumeURL      string    `gorm:"column:resume_url;size:255"`
	Status         string    `gorm:"column:status;size:16;default:submitted"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Application) TableName() string { return "applications" }

type SavedJob struct {
	ID        uint64    `gorm:"column:id;primaryKey"`
	ProfileID uint64    `gorm:"column:profile_id;uniqueIndex:uk_profile_job"`
	JobID     uint64    `gorm:"column:job_id;uniqueIndex:uk_profile_job"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (SavedJob) TableName() string { return "saved_jobs" }
