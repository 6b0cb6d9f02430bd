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

type ContactDao struct {
	DB *gorm.DB
}

func NewContactDao() *ContactDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &ContactDao{DB: dal.DB}
}

func NewContactDaoWithDB(db *gorm.DB) *ContactDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &ContactDao{DB: db}
}

func (r *ContactDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

func (r *ContactDao) Insert(ctx context.Context, c *model.Contact) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert contact failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *ContactDao) List(ctx context.Context, status string, limit, offset int) ([]model.Contact, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list contacts failed: %w", err)
	}
	q := r.DB.WithContext(ctx).Model(&model.Contact{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}
	var out []model.Contact
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find failed: %w", err)
	}
	return out, total, nil
}

func (r *ContactDao) UpdateStatus(ctx context.Context, id uint64, status string) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("update contact failed: %w", err)
	}
	return r.DB.WithContext(ctx).Model(&model.Contact{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *ContactDao) CountByStatus(ctx context.Context, status string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("count contacts failed: %w", err)
	}
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Contact{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *ContactDao) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	var p model.Profile
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &p, nil
}

func (r *ContactDao) InsertProfile(ctx context.Context, p *model.Profile) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert profile failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(p).Error
}
