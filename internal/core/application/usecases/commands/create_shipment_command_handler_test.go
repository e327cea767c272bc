package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var landQuote = kernel.NewAmount(11_000_000_000_000_000)

func landAttributes() shipment.Attributes {
	return shipment.Attributes{
		ItemName: "X",
		Mode:     shipment.Land,
		ItemType: shipment.General,
		Distance: 100,
	}
}

func newCreateHandler(uow *MockUoW, locker *recordingLocker) commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(shipmentFactory{uow}, locker, fixedClock{now})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(sender, receiver, landAttributes(), landQuote)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	vault := new(MockEscrowVault)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("NextIndex", ctx, sender).Return(uint64(3), nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			return s.Index() == 3 && s.Status() == shipment.Pending && s.Price().IsEqual(landQuote)
		})).Return(nil).Once(),
		uow.On("EscrowVault").Return(vault).Once(),
		vault.On("Deposit", ctx, landQuote).Return(nil).Once(),
		uow.On("TrackAggregate", mock.AnythingOfType("*shipment.Shipment")).Return().Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	locker := &recordingLocker{}
	index, err := newCreateHandler(uow, locker).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), index)
	assert.Equal(t, []string{"shipment:" + sender.String()}, locker.keys)
	assert.Zero(t, locker.held)
	repo.AssertExpectations(t)
	vault.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_InvalidPayment(t *testing.T) {
	cmd, err := commands.NewCreateShipmentCommand(sender, receiver, landAttributes(), kernel.NewAmount(1))
	require.NoError(t, err)

	uow := new(MockUoW)
	locker := &recordingLocker{}
	_, err = newCreateHandler(uow, locker).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidPayment)
	assert.Empty(t, locker.keys)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_ZeroQuote(t *testing.T) {
	attrs := landAttributes()
	attrs.Distance = 0
	cmd, err := commands.NewCreateShipmentCommand(sender, receiver, attrs, kernel.ZeroAmount())
	require.NoError(t, err)

	uow := new(MockUoW)
	_, err = newCreateHandler(uow, &recordingLocker{}).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidAmount)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_SelfShipment(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(sender, sender, landAttributes(), landQuote)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	repo.On("NextIndex", ctx, sender).Return(uint64(0), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = newCreateHandler(uow, &recordingLocker{}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidAddress)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_DepositError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(sender, receiver, landAttributes(), landQuote)

	repo := new(MockShipmentRepository)
	vault := new(MockEscrowVault)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	repo.On("NextIndex", ctx, sender).Return(uint64(0), nil).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("EscrowVault").Return(vault).Once()
	vault.On("Deposit", ctx, landQuote).Return(errors.New("disk full")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := newCreateHandler(uow, &recordingLocker{}).Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(sender, receiver, landAttributes(), landQuote)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	locker := &recordingLocker{}
	_, err := newCreateHandler(uow, locker).Handle(ctx, cmd)

	require.Error(t, err)
	assert.Zero(t, locker.held)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	_, err := newCreateHandler(new(MockUoW), &recordingLocker{}).Handle(t.Context(), commands.CreateShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
