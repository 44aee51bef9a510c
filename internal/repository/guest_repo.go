package repository

import (
	"context"

	"github.com/hotelsuite/hotel-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindAll(ctx context.Context) ([]models.Guest, error)
	ExistsEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsDocument(ctx context.Context, document string, excludeID uint) (bool, error)
	Save(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, id uint) error
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).
		Preload("Bookings").
		First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) ExistsEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email = ?", email, excludeID)
}

func (r *guestRepository) ExistsDocument(ctx context.Context, document string, excludeID uint) (bool, error) {
	return r.exists(ctx, "document = ?", document, excludeID)
}

func (r *guestRepository) exists(ctx context.Context, cond string, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where(cond, value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *guestRepository) Save(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Guest{}, id).Error
}
