package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/platform/logger"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// Repository is the persistence contract for one record kind. Each method is
// a single statement against one table; there is no locking, so a delete may
// race an update on the same id.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	// Update overwrites every column of row id with rec, including zero values.
	// id and created_at are kept.
	Update(ctx context.Context, id uint, rec *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

// Migrate creates or updates the table of every record kind.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		logger.Error("List: query failed", err)
		return nil, err
	}
	return records, nil
}

func (r *gormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		logger.Error("Get: query failed", err)
		return nil, err
	}
	return &rec, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		logger.Error("Create: failed to insert record", err)
		return err
	}
	return nil
}

func (r *gormRepository[T]) Update(ctx context.Context, id uint, rec *T) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("ID", "CreatedAt").
		Updates(rec)
	if res.Error != nil {
		logger.Error("Update: exec failed", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		logger.Error("Delete: exec failed", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		logger.Error("Count: query failed", err)
		return 0, err
	}
	return n, nil
}
