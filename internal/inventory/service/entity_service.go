package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"github.com/ridloal/inventory-management/internal/platform/logger"
)

// EntityService exposes CRUD for a single record kind. Not-found results keep
// repository.ErrRecordNotFound in their chain; other storage failures are
// wrapped with the kind name.
type EntityService[T any] interface {
	Kind() domain.Kind
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id uint, rec *T) (*T, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type entityService[T any] struct {
	kind domain.Kind
	repo repository.Repository[T]
}

func NewEntityService[T any](kind domain.Kind, repo repository.Repository[T]) EntityService[T] {
	return &entityService[T]{kind: kind, repo: repo}
}

func (s *entityService[T]) Kind() domain.Kind {
	return s.kind
}

func (s *entityService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", s.kind.Plural(), err)
	}
	return records, nil
}

func (s *entityService[T]) Get(ctx context.Context, id uint) (*T, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrap("load", id, err)
	}
	return rec, nil
}

func (s *entityService[T]) Create(ctx context.Context, rec *T) error {
	if err := s.repo.Create(ctx, rec); err != nil {
		logger.Error(fmt.Sprintf("Create: failed to save %s", s.kind), err)
		return fmt.Errorf("could not save %s: %w", s.kind, err)
	}
	return nil
}

// Update replaces every field of record id and returns the stored result.
func (s *entityService[T]) Update(ctx context.Context, id uint, rec *T) (*T, error) {
	if err := s.repo.Update(ctx, id, rec); err != nil {
		return nil, s.wrap("update", id, err)
	}
	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		// deleted between the write and the read back
		return nil, s.wrap("reload", id, err)
	}
	return updated, nil
}

func (s *entityService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrap("delete", id, err)
	}
	return nil
}

func (s *entityService[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count %s: %w", s.kind.Plural(), err)
	}
	return n, nil
}

func (s *entityService[T]) wrap(op string, id uint, err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", s.kind, id, repository.ErrRecordNotFound)
	}
	logger.Error(fmt.Sprintf("%s %s %d", op, s.kind, id), err)
	return fmt.Errorf("could not %s %s %d: %w", op, s.kind, id, err)
}
