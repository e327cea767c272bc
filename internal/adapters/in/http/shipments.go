package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetQuote handles GET /api/v1/quote - prices a shipment without creating it.
func (s *Server) GetQuote(ctx echo.Context, params servers.GetQuoteParams) error {
	mode, modeErr := shipment.ParseMode(string(params.Mode))
	itemType, itemErr := shipment.ParseItemType(string(params.ItemType))
	if err := errors.Join(modeErr, itemErr); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewQuoteShipmentQuery(params.Distance, params.Weight, mode, itemType)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.queries.QuoteShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Quote{Price: quote.Price})
}

// CreateShipment handles POST /api/v1/shipments - opens a shipment for the
// calling sender and escrows the attached value.
func (s *Server) CreateShipment(ctx echo.Context, params servers.CreateShipmentParams) error {
	var body servers.NewShipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parties, err := parseAddresses(params.XCallerAddress, body.Receiver)
	if err != nil {
		return writeError(ctx, err)
	}

	mode, modeErr := shipment.ParseMode(string(body.Mode))
	itemType, itemErr := shipment.ParseItemType(string(body.ItemType))
	attached, amountErr := kernel.AmountFromDecimal(body.AttachedValue)
	if err = errors.Join(modeErr, itemErr, amountErr); err != nil {
		return writeError(ctx, err)
	}

	attrs := shipment.Attributes{
		ItemName: body.ItemName,
		Mode:     mode,
		ItemType: itemType,
		Distance: body.Distance,
		Weight:   body.Weight,
	}
	if body.PickupTime != nil {
		attrs.PickupTime = body.PickupTime.UTC()
	}

	cmd, err := commands.NewCreateShipmentCommand(parties[0], parties[1], attrs, attached)
	if err != nil {
		return writeError(ctx, err)
	}

	index, err := s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ShipmentRef{Sender: parties[0].String(), Index: index})
}

// GetSenderShipments handles GET /api/v1/shipments/{sender}.
func (s *Server) GetSenderShipments(
	ctx echo.Context,
	sender servers.Sender,
	params servers.GetSenderShipmentsParams,
) error {
	addr, err := kernel.ParseAddress(sender)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSenderShipmentsQuery(addr, deref(params.Offset), deref(params.Limit))
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.queries.GetSenderShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipments(list))
}

// GetSenderCount handles GET /api/v1/shipments/{sender}/count.
func (s *Server) GetSenderCount(ctx echo.Context, sender servers.Sender) error {
	addr, err := kernel.ParseAddress(sender)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSenderCountQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.queries.GetSenderCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Count{Count: count})
}

// GetShipment handles GET /api/v1/shipments/{sender}/{index}.
func (s *Server) GetShipment(ctx echo.Context, sender servers.Sender, index servers.Index) error {
	addr, err := kernel.ParseAddress(sender)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(addr, index)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(found))
}

// StartShipment handles POST /api/v1/shipments/{sender}/{index}/start. Only the
// sender may hand a shipment over for transport.
func (s *Server) StartShipment(
	ctx echo.Context,
	sender servers.Sender,
	index servers.Index,
	params servers.StartShipmentParams,
) error {
	parties, err := parseAddresses(params.XCallerAddress, sender)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartShipmentCommand(parties[0], parties[1], index)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.StartShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteShipment handles POST /api/v1/shipments/{sender}/{index}/complete.
// Only the receiver may confirm delivery; the escrow goes to the sender.
func (s *Server) CompleteShipment(
	ctx echo.Context,
	sender servers.Sender,
	index servers.Index,
	params servers.CompleteShipmentParams,
) error {
	parties, err := parseAddresses(params.XCallerAddress, sender)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteShipmentCommand(parties[0], parties[1], index)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.CompleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetReceiverShipments handles GET /api/v1/receivers/{receiver}/shipments.
func (s *Server) GetReceiverShipments(
	ctx echo.Context,
	receiver servers.Receiver,
	params servers.GetReceiverShipmentsParams,
) error {
	addr, err := kernel.ParseAddress(receiver)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReceiverShipmentsQuery(addr, deref(params.Offset), deref(params.Limit))
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.queries.GetReceiverShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipments(list))
}

// GetReceiverCount handles GET /api/v1/receivers/{receiver}/count.
func (s *Server) GetReceiverCount(ctx echo.Context, receiver servers.Receiver) error {
	addr, err := kernel.ParseAddress(receiver)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReceiverCountQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.queries.GetReceiverCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Count{Count: count})
}

// GetAccountStats handles GET /api/v1/accounts/{address}/stats.
func (s *Server) GetAccountStats(ctx echo.Context, address servers.AccountAddress) error {
	addr, err := kernel.ParseAddress(address)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAccountStatsQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.queries.GetAccountStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.AccountStats{
		Account:   stats.Account,
		Total:     stats.Total,
		Pending:   stats.Pending,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
	})
}

// GetNativeBalance handles GET /api/v1/accounts/{address}/balance.
func (s *Server) GetNativeBalance(ctx echo.Context, address servers.AccountAddress) error {
	addr, err := kernel.ParseAddress(address)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetNativeBalanceQuery(addr)
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.queries.GetNativeBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.NativeBalance{Account: balance.Account, Balance: balance.Balance})
}

func toShipments(list []queries.ShipmentResponse) []servers.Shipment {
	response := make([]servers.Shipment, len(list))
	for i, item := range list {
		response[i] = toShipment(item)
	}
	return response
}

func toShipment(item queries.ShipmentResponse) servers.Shipment {
	return servers.Shipment{
		Sender:       item.Sender,
		Index:        item.Index,
		Receiver:     item.Receiver,
		ItemName:     item.ItemName,
		Mode:         servers.Mode(item.Mode),
		ItemType:     servers.ItemType(item.ItemType),
		Distance:     item.Distance,
		Weight:       item.Weight,
		Price:        item.Price,
		Status:       servers.Status(item.Status),
		IsPaid:       item.IsPaid,
		PickupTime:   optionalTime(item.PickupTime),
		CreatedAt:    item.CreatedAt,
		DeliveryTime: optionalTime(item.DeliveryTime),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
