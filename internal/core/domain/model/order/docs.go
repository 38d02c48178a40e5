// Package order provides domain entities and business logic for table-service
// order management. It implements the Order aggregate root with an item ledger
// and lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root composing identity, line items, and status
//   - Line: an order line item, owned exclusively by its Order
//   - Status: the lifecycle state machine
//   - PaymentMethod: how a paid order was settled
//
// Key business rules:
//   - Line quantities are always >= 1; a line decremented to zero is removed
//   - The total equals the sum of quantity * unit price over current lines
//     and is recomputed from live menu prices until payment freezes it
//   - Pay, Cancel, and Refund are guarded transitions; the kitchen
//     progression NEW -> IN_PREPARATION -> READY is deliberately unguarded
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
