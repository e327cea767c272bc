package http

import (
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateShipment   commands.CreateShipmentCommandHandler
	StartShipment    commands.StartShipmentCommandHandler
	CompleteShipment commands.CompleteShipmentCommandHandler
	Stake            commands.StakeCommandHandler
	WithdrawStake    commands.WithdrawStakeCommandHandler
	ClaimReward      commands.ClaimRewardCommandHandler
	ApproveTokens    commands.ApproveTokensCommandHandler
	TransferTokens   commands.TransferTokensCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	QuoteShipment        queries.QuoteShipmentQueryHandler
	GetShipment          queries.GetShipmentQueryHandler
	GetSenderShipments   queries.GetSenderShipmentsQueryHandler
	GetSenderCount       queries.GetSenderCountQueryHandler
	GetReceiverShipments queries.GetReceiverShipmentsQueryHandler
	GetReceiverCount     queries.GetReceiverCountQueryHandler
	GetAccountStats      queries.GetAccountStatsQueryHandler
	GetNativeBalance     queries.GetNativeBalanceQueryHandler
	GetTokenBalance      queries.GetTokenBalanceQueryHandler
	GetStakeAccount      queries.GetStakeAccountQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// The caller identity arrives in the X-Caller-Address header and is trusted:
// authentication happens in front of this service.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}
