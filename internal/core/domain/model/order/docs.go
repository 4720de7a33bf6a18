// Package order provides domain entities and business logic for order
// lifecycle management in the food-distribution system. It implements the
// Order aggregate root with its items, the transition authorizer, and the
// pricing calculator.
//
// The package includes:
//   - Order: The aggregate root and single mutation surface (ApplyTransition)
//   - Item: An order line owned by the aggregate
//   - Status: A state machine enforcing the order workflow
//   - Authorize: A pure, table-driven decision of who may perform which transition
//   - PriceItems: The deterministic derivation of line totals and the order total
//
// Key business rules:
//   - Orders are placed pending by a restaurant with at least one item
//   - Admins confirm, price, and assign; drivers pick up and deliver;
//     the placing restaurant completes
//   - Restaurants may cancel their own pending orders; admins may cancel
//     from any non-terminal state
//   - Completed and cancelled orders are immutable
//   - Once priced, the order total always equals the sum of its line totals
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
