// Package ports defines the contracts between the ledger core and its adapters:
// aggregate repositories, the value-moving collaborators (escrow vault and
// fungible asset ledger), the clock, read models and the notification outbox.
//
// Every write-side port returned by a UnitOfWork is bound to that unit's
// transaction: changes made through it become visible together on Commit or
// disappear together on Rollback.
package ports
