// Package rental provides domain entities and business logic for rental order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing fields, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders reference exactly one client and one vehicle, fixed at placement
//   - Order status follows a defined workflow: Open -> Approved -> Closed,
//     with cancellation possible only while Open
//   - The rental window, address, region tax, and total are set together on approval
//   - Closing an overdue order charges a flat late fee of twice the daily rate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package rental
