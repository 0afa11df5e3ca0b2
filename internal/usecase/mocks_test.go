package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/site-forms/internal/entity"
)

type MockContactChannel struct {
	mock.Mock
}

func (m *MockContactChannel) Send(ctx context.Context, n entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockContactChannel) Name() string {
	return "mock"
}

type MockSubscriberAPI struct {
	mock.Mock
}

func (m *MockSubscriberAPI) Subscribe(ctx context.Context, sub entity.Subscription) (*entity.SubscriberResponse, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SubscriberResponse), args.Error(1)
}
