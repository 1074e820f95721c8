package commands_test

import (
	"errors"
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateCartCommand(id)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *cart.Cart) bool {
			return c.ID().IsEqual(id) && len(c.DeliveryModes()) == 0 && !c.HasDeliveryMode()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewCreateCartCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCartCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCartUoWFactory)

	err := commands.NewCreateCartCommandHandler(factory).Handle(t.Context(), commands.CreateCartCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCartCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCartCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCartCommand(kernel.NewUUID())

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewCreateCartCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate key")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateCartCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCartCommand(kernel.NewUUID())

	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err := commands.NewCreateCartCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestAddDeliveryModeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart(newTestMode("standard-gross", "4.99"))
	cost, _ := kernel.NewPriceFromString("0")
	cmd, _ := commands.NewAddDeliveryModeCommand(existing.ID(), "pickup", "Pickup in store", cost)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewAddDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, existing.DeliveryModes(), 2)
	assert.Equal(t, "pickup", existing.DeliveryModes()[1].Code())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddDeliveryModeCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart(newTestMode("standard-gross", "4.99"))
	cost, _ := kernel.NewPriceFromString("3.99")
	cmd, _ := commands.NewAddDeliveryModeCommand(existing.ID(), "standard-gross", "Standard", cost)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewAddDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrDeliveryModeAlreadyExists)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddDeliveryModeCommandHandler_Handle_CartNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddDeliveryModeCommand(id, "pickup", "Pickup", kernel.ZeroPrice())

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("cart", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewAddDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddDeliveryModeCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart()
	cmd, _ := commands.NewAddDeliveryModeCommand(existing.ID(), "pickup", "Pickup", kernel.ZeroPrice())

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewAddDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}

func TestSetDeliveryModeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart(newTestMode("standard-gross", "4.99"), newTestMode("premium-gross", "12.50"))
	cmd, _ := commands.NewSetDeliveryModeCommand(existing.ID(), "premium-gross")

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewSetDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, existing.DeliveryModeCode())
	assert.Equal(t, "premium-gross", *existing.DeliveryModeCode())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetDeliveryModeCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart(newTestMode("standard-gross", "4.99"))
	cmd, _ := commands.NewSetDeliveryModeCommand(existing.ID(), "drone")

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewSetDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrDeliveryModeNotAvailable)
	assert.False(t, existing.HasDeliveryMode())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetDeliveryModeCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	existing := newTestCart(newTestMode("standard-gross", "4.99"))
	cmd, _ := commands.NewSetDeliveryModeCommand(existing.ID(), "standard-gross")

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewSetDeliveryModeCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
