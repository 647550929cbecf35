package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/blogserver/internal/model"
)

// BlogStore is a mock implementation of model.BlogStore.
type BlogStore struct {
	mock.Mock
}

func (m *BlogStore) List(ctx context.Context) ([]model.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Blog), args.Error(1)
}

func (m *BlogStore) GetByID(ctx context.Context, id uuid.UUID) (model.Blog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Blog), args.Error(1)
}

func (m *BlogStore) Create(ctx context.Context, blog model.Blog) (model.Blog, error) {
	args := m.Called(ctx, blog)
	return args.Get(0).(model.Blog), args.Error(1)
}

func (m *BlogStore) Update(ctx context.Context, blog model.Blog) (model.Blog, error) {
	args := m.Called(ctx, blog)
	return args.Get(0).(model.Blog), args.Error(1)
}

func (m *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
