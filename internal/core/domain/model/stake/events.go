package stake

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

const (
	EventStaked     = "Staked"
	EventWithdrawn  = "Withdrawn"
	EventRewardPaid = "RewardPaid"
)

type eventHeader struct {
	id kernel.UUID
	at time.Time
}

func (h eventHeader) EventID() kernel.UUID  { return h.id }
func (h eventHeader) OccurredAt() time.Time { return h.at }

// StakedEvent is emitted when an owner deposits principal.
type StakedEvent struct {
	eventHeader
	Owner     string    `json:"owner"`
	Amount    string    `json:"amount"`
	Principal string    `json:"principal"`
	Timestamp time.Time `json:"timestamp"`
}

func (StakedEvent) EventName() string { return EventStaked }

// WithdrawnEvent is emitted when an owner withdraws principal.
type WithdrawnEvent struct {
	eventHeader
	Owner     string    `json:"owner"`
	Amount    string    `json:"amount"`
	Principal string    `json:"principal"`
	Timestamp time.Time `json:"timestamp"`
}

func (WithdrawnEvent) EventName() string { return EventWithdrawn }

// RewardPaidEvent is emitted when accrued rewards are paid out.
type RewardPaidEvent struct {
	eventHeader
	Owner     string    `json:"owner"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func (RewardPaidEvent) EventName() string { return EventRewardPaid }
