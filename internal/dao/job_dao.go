package dao

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"cruise-booking-api/internal/dal"
	"cruise-booking-api/internal/model"
)

type JobDao struct {
	DB *gorm.DB
}

func NewJobDao() *JobDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &JobDao{DB: dal.DB}
}

func NewJobDaoWithDB(db *gorm.DB) *JobDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &JobDao{DB: db}
}

func (r *JobDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

func (r *JobDao) Insert(ctx context.Context, j *model.Job) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert job failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(j).Error
}

func (r *JobDao) GetByID(ctx context.Context, id uint64) (*model.Job, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get job failed: %w", err)
	}
	var j model.Job
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &j, nil
}

// List returns jobs filtered by status and optional keyword, newest first.
func (r *JobDao) List(ctx context.Context, status, kw string, limit, offset int) ([]model.Job, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list jobs failed: %w", err)
	}
	q := r.DB.WithContext(ctx).Model(&model.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if kw != "" {
		q = q.Where("title LIKE ? OR department LIKE ?", "%"+kw+"%", "%"+kw+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}
	var out []model.Job
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	return out, total, nil
}

func (r *JobDao) Update(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("update job failed: %w", err)
	}
	updates["updated_at"] = time.Now()
	return r.DB.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Updates(updates).Error
}

func (r *JobDao) Delete(ctx context.Context, id uint64) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("delete job failed: %w", err)
	}
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Job{}).Error
}

func (r *JobDao) CountByStatus(ctx context.Context, status string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("count jobs failed: %w", err)
	}
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Job{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *JobDao) InsertApplication(ctx context.Context, a *model.Application) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert application failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *JobDao) ListApplications(ctx context.Context, jobID uint64, status string, limit, offset int) ([]model.Application, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list applications failed: %w", err)
	}
	q := r.DB.WithContext(ctx).Model(&model.Application{})
	if jobID > 0 {
		q = q.Where("job_id = ?", jobID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}
	var out []model.Application
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	return out, total, nil
}

func (r *JobDao) UpdateApplicationStatus(ctx context.Context, id uint64, status string) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("update application failed: %w", err)
	}
	return r.DB.WithContext(ctx).Model(&model.Application{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *JobDao) CountApplicationsByStatus(ctx context.Context, status string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("count applications failed: %w", err)
	}
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Application{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *JobDao) InsertSavedJob(ctx context.Context, s *model.SavedJob) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert saved job failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *JobDao) ListSavedJobs(ctx context.Context, profileID uint64) ([]model.SavedJob, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("list saved jobs failed: %w", err)
	}
	var out []model.SavedJob
	err := r.DB.WithContext(ctx).Where("profile_id = ?", profileID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	return out, nil
}

func (r *JobDao) DeleteSavedJob(ctx context.Context, id uint64) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("delete saved job failed: %w", err)
	}
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.SavedJob{}).Error
}
