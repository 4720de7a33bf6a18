// Package actor provides the identity model for operations on orders.
// An actor is an id plus a role (admin, restaurant, driver); the transition
// authorizer decides what each role may do to an order. The package does not
// implement authentication - the HTTP layer supplies actor context from the
// external auth provider.
package actor
