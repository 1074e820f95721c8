package http_test

import (
	"context"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateCartHandler struct{ mock.Mock }

func (m *MockCreateCartHandler) Handle(ctx context.Context, cmd commands.CreateCartCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockAddDeliveryModeHandler struct{ mock.Mock }

func (m *MockAddDeliveryModeHandler) Handle(ctx context.Context, cmd commands.AddDeliveryModeCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockSetDeliveryModeHandler struct{ mock.Mock }

func (m *MockSetDeliveryModeHandler) Handle(ctx context.Context, cmd commands.SetDeliveryModeCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockSelectPreferredDeliveryModeHandler struct{ mock.Mock }

func (m *MockSelectPreferredDeliveryModeHandler) Handle(
	ctx context.Context,
	cmd commands.SelectPreferredDeliveryModeCommand,
) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockGetCartDeliveryModesHandler struct{ mock.Mock }

func (m *MockGetCartDeliveryModesHandler) Handle(
	ctx context.Context,
	query queries.GetCartDeliveryModesQuery,
) (queries.GetCartDeliveryModesQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCartDeliveryModesQueryResponse), args.Error(1)
}

type MockGetCartsWithoutDeliveryModeHandler struct{ mock.Mock }

func (m *MockGetCartsWithoutDeliveryModeHandler) Handle(
	ctx context.Context,
	query queries.GetCartsWithoutDeliveryModeQuery,
) ([]queries.GetCartsWithoutDeliveryModeQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCartsWithoutDeliveryModeQueryResponse), args.Error(1)
}
