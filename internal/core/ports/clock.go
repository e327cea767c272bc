package ports

import "time"

// Clock supplies ledger time. It is injected so that accrual is deterministic.
type Clock interface {
	Now() time.Time
}
