package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"cruise-booking-api/internal/dao"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/idgen"
	"cruise-booking-api/internal/model"
)

type ContactService struct {
	contactDao *dao.ContactDao
}

func NewContactService(contactDao *dao.ContactDao) *ContactService {
	return &ContactService{contactDao: contactDao}
}

// Create stores an enquiry and upserts a profile keyed by email so repeat
// writers accumulate on one record.
func (s *ContactService) Create(ctx context.Context, req dto.CreateContactReq) (*model.Contact, error) {
	c := &model.Contact{
		ID:        idgen.New(),
		Status:    model.ContactStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = copier.Copy(c, &req)
	if err := s.contactDao.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact failed: %w", err)
	}

	existing, err := s.contactDao.GetProfileByEmail(ctx, req.Email)
	if err == nil && existing == nil {
		p := &model.Profile{
			ID:        idgen.New(),
			Name:      req.Name,
			Email:     req.Email,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		_ = s.contactDao.InsertProfile(ctx, p)
	}
	return c, nil
}

func (s *ContactService) List(ctx context.Context, status string, page, pageSize int) ([]model.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.contactDao.List(ctx, status, pageSize, (page-1)*pageSize)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.contactDao.UpdateStatus(ctx, id, status)
}
