// Package memory implements the ledger ports in process memory.
//
// A Store holds committed state. Each UnitOfWork stages its writes: shipment
// appends and updates, account snapshots, balance credits and debits, allowance
// changes and outbox entries. Commit validates the staged writes against the
// latest committed state under the store mutex (no balance or allowance may go
// negative, no shipment index may be taken twice) and applies them all at once.
// Rollback discards them. Readers only ever observe committed state.
package memory
