package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/copier"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/dao"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/event"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/model"
	"cruise-booking-api/internal/utils"
)

type JobService struct {
	jobDao *dao.JobDao
	pub    event.Publisher
}

func NewJobService(jobDao *dao.JobDao, pub event.Publisher) *JobService {
	return &JobService{jobDao: jobDao, pub: pub}
}

func (s *JobService) Create(ctx context.Context, req dto.CreateJobReq) (*model.Job, error) {
	j := &model.Job{
		ID:        idgen.New(),
		Status:    model.JobStatusOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = copier.Copy(j, &req)
	if err := s.jobDao.Insert(ctx, j); err != nil {
		return nil, fmt.Errorf("create job failed: %w", err)
	}
	return j, nil
}

func (s *JobService) Get(ctx context.Context, id uint64) (*model.Job, error) {
	return s.jobDao.GetByID(ctx, id)
}

// List serves the public board: only open jobs unless the caller asks for a
// status explicitly (admin surface).
func (s *JobService) List(ctx context.Context, status, kw string, page, pageSize int) ([]model.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.jobDao.List(ctx, status, kw, pageSize, (page-1)*pageSize)
}

func (s *JobService) Update(ctx context.Context, id uint64, req dto.UpdateJobReq) error {
	j, err := s.jobDao.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if j == nil {
		return fmt.Errorf("job %d not found", id)
	}
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Department != "" {
		updates["department"] = req.Department
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Requirements != "" {
		updates["requirements"] = req.Requirements
	}
	if req.SalaryRange != "" {
		updates["salary_range"] = req.SalaryRange
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if len(updates) == 0 {
		return nil
	}
	return s.jobDao.Update(ctx, id, updates)
}

func (s *JobService) Delete(ctx context.Context, id uint64) error {
	return s.jobDao.Delete(ctx, id)
}

// Apply records an application against an open job and announces it to the
// recruitment queue.
func (s *JobService) Apply(ctx context.Context, req dto.CreateApplicationReq) (*model.Application, error) {
	j, err := s.jobDao.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("job %d not found", req.JobID)
	}
	if j.Status != model.JobStatusOpen {
		return nil, fmt.Errorf("job %d is closed", req.JobID)
	}

	a := &model.Application{
		ID:        idgen.New(),
		Status:    model.ApplicationStatusSubmitted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = copier.Copy(a, &req)
	a.ApplicantPhone = utils.NormalizePhone(req.ApplicantPhone, config.C.Gateway.DefaultDialCode)

	if err := s.jobDao.InsertApplication(ctx, a); err != nil {
		return nil, fmt.Errorf("create application failed: %w", err)
	}

	if s.pub != nil {
		evt := event.ApplicationReceivedEvent{
			ApplicationID: a.ID,
			JobID:         j.ID,
			JobTitle:      j.Title,
			Applicant:     a.ApplicantName,
			Email:         a.ApplicantEmail,
			ReceivedAt:    time.Now().Unix(),
		}
		if err := s.pub.Publish("application.received", &evt); err != nil {
			log.Printf("[JOB] publish application.received failed for %d: %v", a.ID, err)
		}
	}
	return a, nil
}

func (s *JobService) ListApplications(ctx context.Context, jobID uint64, status string, page, pageSize int) ([]model.Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.jobDao.ListApplications(ctx, jobID, status, pageSize, (page-1)*pageSize)
}

func (s *JobService) UpdateApplicationStatus(ctx context.Context, id uint64, status string) error {
	return s.jobDao.UpdateApplicationStatus(ctx, id, status)
}

func (s *JobService) SaveJob(ctx context.Context, req dto.SaveJobReq) (*model.SavedJob, error) {
	j, err := s.jobDao.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("job %d not found", req.JobID)
	}
	sj := &model.SavedJob{
		ID:        idgen.New(),
		ProfileID: req.ProfileID,
		JobID:     req.JobID,
		CreatedAt: time.Now(),
	}
	if err := s.jobDao.InsertSavedJob(ctx, sj); err != nil {
		// uk_profile_job makes a repeat save a conflict, not a duplicate row
		return nil, fmt.Errorf("save job failed: %w", err)
	}
	return sj, nil
}

func (s *JobService) ListSavedJobs(ctx context.Context, profileID uint64) ([]model.SavedJob, error) {
	return s.jobDao.ListSavedJobs(ctx, profileID)
}

func (s *JobService) UnsaveJob(ctx context.Context, id uint64) error {
	return s.jobDao.DeleteSavedJob(ctx, id)
}
