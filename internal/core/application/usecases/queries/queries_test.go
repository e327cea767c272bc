package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	sender   = kernel.MustParseAddress("0x1000000000000000000000000000000000000001")
	receiver = kernel.MustParseAddress("0x2000000000000000000000000000000000000002")
	owner    = kernel.MustParseAddress("0x4000000000000000000000000000000000000004")
	engine   = kernel.MustParseAddress("0x5000000000000000000000000000000000000005")
	now      = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) GetShipment(ctx context.Context, s kernel.Address, i uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, s, i)
	if v := args.Get(0); v != nil {
		return v.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockShipmentReader) ListBySender(ctx context.Context, s kernel.Address, p ports.Page) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, s, p)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentReader) CountBySender(ctx context.Context, s kernel.Address) (uint64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockShipmentReader) ListByReceiver(ctx context.Context, r kernel.Address, p ports.Page) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, r, p)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentReader) CountByReceiver(ctx context.Context, r kernel.Address) (uint64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockShipmentReader) StatsBySender(ctx context.Context, s kernel.Address) (ports.ShipmentStats, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(ports.ShipmentStats), args.Error(1)
}

type MockStakeAccountReader struct{ mock.Mock }

func (m *MockStakeAccountReader) GetAccount(ctx context.Context, o kernel.Address) (*stake.Account, error) {
	args := m.Called(ctx, o)
	if v := args.Get(0); v != nil {
		return v.(*stake.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBalanceReader struct{ mock.Mock }

func (m *MockBalanceReader) NativeBalanceOf(ctx context.Context, a kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(kernel.Amount), args.Error(1)
}
func (m *MockBalanceReader) TokenBalanceOf(ctx context.Context, o kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.Amount), args.Error(1)
}
func (m *MockBalanceReader) TokenAllowance(ctx context.Context, o, s kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, o, s)
	return args.Get(0).(kernel.Amount), args.Error(1)
}

func deliveredShipment(t *testing.T, index uint64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(sender, index, receiver, shipment.Attributes{
		ItemName: "Glassware", Mode: shipment.Air, ItemType: shipment.Fragile, Distance: 10, Weight: 2,
		PickupTime: now,
	}, kernel.NewAmount(42), shipment.Delivered, now, now.Add(time.Hour))
	require.NoError(t, err)
	return s
}

func TestQuoteShipmentQueryHandler(t *testing.T) {
	q, err := queries.NewQuoteShipmentQuery(100, 0, shipment.Land, shipment.General)
	require.NoError(t, err)

	resp, err := queries.NewQuoteShipmentQueryHandler().Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, "11000000000000000", resp.Price)

	_, err = queries.NewQuoteShipmentQuery(1, 1, shipment.ModeUnknown, shipment.General)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewQuoteShipmentQueryHandler().Handle(t.Context(), queries.QuoteShipmentQuery{})
	require.ErrorIs(t, err, queries.ErrQuoteShipmentQueryIsNotConstructed)
}

func TestGetShipmentQueryHandler(t *testing.T) {
	ctx := t.Context()
	reader := new(MockShipmentReader)
	reader.On("GetShipment", ctx, sender, uint64(0)).Return(deliveredShipment(t, 0), nil).Once()
	reader.On("GetShipment", ctx, sender, uint64(7)).
		Return(nil, errs.NewObjectNotFoundError("shipment", "7")).Once()

	h := queries.NewGetShipmentQueryHandler(reader)

	q, err := queries.NewGetShipmentQuery(sender, 0)
	require.NoError(t, err)
	resp, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, sender.String(), resp.Sender)
	assert.Equal(t, receiver.String(), resp.Receiver)
	assert.Equal(t, "Delivered", resp.Status)
	assert.Equal(t, "Air", resp.Mode)
	assert.Equal(t, "Fragile", resp.ItemType)
	assert.Equal(t, "42", resp.Price)
	assert.True(t, resp.IsPaid)
	assert.Equal(t, now.Add(time.Hour), resp.DeliveryTime)

	q, _ = queries.NewGetShipmentQuery(sender, 7)
	_, err = h.Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrNotFound)
	reader.AssertExpectations(t)
}

func TestListShipmentsQueryHandlers(t *testing.T) {
	ctx := t.Context()
	reader := new(MockShipmentReader)
	list := []*shipment.Shipment{deliveredShipment(t, 0), deliveredShipment(t, 1)}
	reader.On("ListBySender", ctx, sender, ports.Page{Offset: 0, Limit: queries.MaxPageSize}).Return(list, nil).Once()
	reader.On("ListByReceiver", ctx, receiver, ports.Page{Offset: 1, Limit: 1}).Return(list[1:], nil).Once()

	sq, err := queries.NewGetSenderShipmentsQuery(sender, 0, 0)
	require.NoError(t, err)
	got, err := queries.NewGetSenderShipmentsQueryHandler(reader).Handle(ctx, sq)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[1].Index)

	rq, err := queries.NewGetReceiverShipmentsQuery(receiver, 1, 1)
	require.NoError(t, err)
	got, err = queries.NewGetReceiverShipmentsQueryHandler(reader).Handle(ctx, rq)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = queries.NewGetSenderShipmentsQuery(sender, -1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	_, err = queries.NewGetReceiverShipmentsQuery(receiver, 0, queries.MaxPageSize+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	reader.AssertExpectations(t)
}

func TestCountQueryHandlers(t *testing.T) {
	ctx := t.Context()
	reader := new(MockShipmentReader)
	reader.On("CountBySender", ctx, sender).Return(uint64(3), nil).Once()
	reader.On("CountByReceiver", ctx, receiver).Return(uint64(0), nil).Once()

	sq, _ := queries.NewGetSenderCountQuery(sender)
	n, err := queries.NewGetSenderCountQueryHandler(reader).Handle(ctx, sq)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	rq, _ := queries.NewGetReceiverCountQuery(receiver)
	n, err = queries.NewGetReceiverCountQueryHandler(reader).Handle(ctx, rq)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = queries.NewGetSenderCountQuery(kernel.Address{})
	require.ErrorIs(t, err, errs.ErrInvalidAddress)
}

func TestGetAccountStatsQueryHandler(t *testing.T) {
	ctx := t.Context()
	reader := new(MockShipmentReader)
	reader.On("StatsBySender", ctx, sender).
		Return(ports.ShipmentStats{Total: 5, Pending: 1, InTransit: 2, Delivered: 2}, nil).Once()

	q, _ := queries.NewGetAccountStatsQuery(sender)
	resp, err := queries.NewGetAccountStatsQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, queries.GetAccountStatsQueryResponse{
		Account: sender.String(), Total: 5, Pending: 1, InTransit: 2, Delivered: 2,
	}, resp)
}

func TestGetStakeAccountQueryHandler(t *testing.T) {
	ctx := t.Context()
	policy := services.NewProportionalRewardPolicy(services.DefaultRewardRateBps)
	account, err := stake.RestoreAccount(owner, kernel.NewAmount(100), kernel.NewAmount(3), kernel.ZeroAmount(), now.Add(-10*time.Second))
	require.NoError(t, err)

	reader := new(MockStakeAccountReader)
	reader.On("GetAccount", ctx, owner).Return(account, nil).Once()
	reader.On("GetAccount", ctx, engine).
		Return(nil, errs.NewObjectNotFoundError("stake account", engine.String())).Once()

	h := queries.NewGetStakeAccountQueryHandler(reader, fixedClock{now}, policy)

	q, _ := queries.NewGetStakeAccountQuery(owner)
	resp, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "100", resp.Principal)
	assert.Equal(t, "3", resp.AccruedRewards)
	assert.Equal(t, "13", resp.PendingReward)
	assert.Equal(t, services.RewardModelProportional, resp.RewardModel)
	assert.Equal(t, now.Add(-10*time.Second), account.LastAccrualTime(), "preview does not settle")

	q, _ = queries.NewGetStakeAccountQuery(engine)
	resp, err = h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "0", resp.Principal)
	assert.Equal(t, "0", resp.PendingReward)
	assert.True(t, resp.LastAccrualTime.IsZero())
}

func TestBalanceQueryHandlers(t *testing.T) {
	ctx := t.Context()
	reader := new(MockBalanceReader)
	reader.On("NativeBalanceOf", ctx, sender).Return(kernel.NewAmount(11), nil).Once()
	reader.On("TokenBalanceOf", ctx, owner).Return(kernel.NewAmount(900), nil).Once()
	reader.On("TokenAllowance", ctx, owner, engine).Return(kernel.NewAmount(100), nil).Once()

	nq, _ := queries.NewGetNativeBalanceQuery(sender)
	native, err := queries.NewGetNativeBalanceQueryHandler(reader).Handle(ctx, nq)
	require.NoError(t, err)
	assert.Equal(t, "11", native.Balance)

	tq, _ := queries.NewGetTokenBalanceQuery(owner)
	token, err := queries.NewGetTokenBalanceQueryHandler(reader, engine).Handle(ctx, tq)
	require.NoError(t, err)
	assert.Equal(t, "900", token.Balance)
	assert.Equal(t, "100", token.StakingAllowance)
	reader.AssertExpectations(t)
}
