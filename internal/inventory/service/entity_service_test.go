package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"github.com/ridloal/inventory-management/internal/inventory/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEntityService_Create(t *testing.T) {
	mockRepo := new(mocks.MockRepository[domain.Customer])
	svc := NewEntityService[domain.Customer](domain.KindCustomer, mockRepo)
	ctx := context.TODO()

	t.Run("Successful create", func(t *testing.T) {
		c := &domain.Customer{Name: "John Doe", Email: "john@example.com", Address: "123 Main St"}
		mockRepo.On("Create", ctx, c).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = 3
		}).Return(nil).Once()

		err := svc.Create(ctx, c)

		assert.NoError(t, err)
		assert.EqualValues(t, 3, c.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Return(errors.New("disk full")).Once()

		err := svc.Create(ctx, &domain.Customer{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "could not save customer")
		mockRepo.AssertExpectations(t)
	})
}

func TestEntityService_Get(t *testing.T) {
	mockRepo := new(mocks.MockRepository[domain.Product])
	svc := NewEntityService[domain.Product](domain.KindProduct, mockRepo)
	ctx := context.TODO()

	t.Run("Found", func(t *testing.T) {
		p := &domain.Product{Model: domain.Model{ID: 1}, Name: "Widget", Price: 10.99}
		mockRepo.On("Get", ctx, uint(1)).Return(p, nil).Once()

		got, err := svc.Get(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, p, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo.On("Get", ctx, uint(9)).Return(nil, repository.ErrRecordNotFound).Once()

		got, err := svc.Get(ctx, 9)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
		assert.EqualError(t, err, "product 9: record not found")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Storage error", func(t *testing.T) {
		mockRepo.On("Get", ctx, uint(2)).Return(nil, errors.New("database is locked")).Once()

		_, err := svc.Get(ctx, 2)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrRecordNotFound)
		assert.Contains(t, err.Error(), "could not load product 2")
		mockRepo.AssertExpectations(t)
	})
}

func TestEntityService_Update(t *testing.T) {
	mockRepo := new(mocks.MockRepository[domain.Stock])
	svc := NewEntityService[domain.Stock](domain.KindStock, mockRepo)
	ctx := context.TODO()

	t.Run("Returns stored record", func(t *testing.T) {
		in := &domain.Stock{ProductID: 2, Quantity: 0}
		stored := &domain.Stock{Model: domain.Model{ID: 5}, ProductID: 2, Quantity: 0}
		mockRepo.On("Update", ctx, uint(5), in).Return(nil).Once()
		mockRepo.On("Get", ctx, uint(5)).Return(stored, nil).Once()

		got, err := svc.Update(ctx, 5, in)

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing record", func(t *testing.T) {
		mockRepo.On("Update", ctx, uint(6), mock.AnythingOfType("*domain.Stock")).Return(repository.ErrRecordNotFound).Once()

		got, err := svc.Update(ctx, 6, &domain.Stock{})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestEntityService_Delete(t *testing.T) {
	mockRepo := new(mocks.MockRepository[domain.Order])
	svc := NewEntityService[domain.Order](domain.KindOrder, mockRepo)
	ctx := context.TODO()

	mockRepo.On("Delete", ctx, uint(1)).Return(nil).Once()
	mockRepo.On("Delete", ctx, uint(1)).Return(repository.ErrRecordNotFound).Once()

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), repository.ErrRecordNotFound)
	mockRepo.AssertExpectations(t)
}

func TestEntityService_ListError(t *testing.T) {
	mockRepo := new(mocks.MockRepository[domain.Supplier])
	svc := NewEntityService[domain.Supplier](domain.KindSupplier, mockRepo)
	ctx := context.TODO()

	mockRepo.On("List", ctx).Return(nil, errors.New("no such table: suppliers")).Once()

	got, err := svc.List(ctx)

	assert.Nil(t, got)
	assert.EqualError(t, err, "could not list suppliers: no such table: suppliers")
	mockRepo.AssertExpectations(t)
}
