package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, rec *T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, id uint, rec *T) error {
	args := m.Called(ctx, id, rec)
	return args.Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository[T]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
