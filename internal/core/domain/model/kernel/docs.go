// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - Address: a validated account identity (20-byte hex, EIP-55 checksummed on output)
//   - Amount: an unsigned 256-bit quantity in the smallest currency unit with
//     overflow-checked arithmetic
//   - UUID: identifiers for domain events
//   - DomainEvent / AggregateRoot: the contract aggregates use to record notifications
//
// All value objects are immutable and their zero values are invalid where a
// zero value would be ambiguous (Address, UUID).
package kernel
