package order

import (
	"fmt"

	"distribution/internal/core/domain/model/actor"
)

// identityCondition is an extra check a transition rule may impose beyond
// the actor's role.
type identityCondition int

const (
	// noCondition means the role alone is sufficient.
	noCondition identityCondition = iota

	// actorIsOrderRestaurant requires the actor to be the restaurant that
	// placed the order.
	actorIsOrderRestaurant

	// actorIsAssignedDriver requires the actor to be the driver assigned
	// to the order.
	actorIsAssignedDriver
)

// transitionKey identifies one edge of the order state machine.
type transitionKey struct {
	from Status
	to   Status
}

// transitionRule names a role allowed to perform a transition, plus any
// identity condition that role must satisfy.
type transitionRule struct {
	role      actor.Role
	condition identityCondition
}

// transitionTable is the authorization rules of the order lifecycle as data.
// A transition is permitted only if an entry for its (from, to) pair lists
// a rule matching the actor; everything else is rejected. Terminal states
// have no outgoing entries, so nothing escapes them.
//
// Keeping the table declarative makes the authorization policy exhaustively
// testable: iterating roles × statuses × statuses covers every case.
func transitionTable() map[transitionKey][]transitionRule {
	table := map[transitionKey][]transitionRule{
		{Pending, Confirmed}:        {{role: actor.RoleAdmin}},
		{Confirmed, Priced}:         {{role: actor.RoleAdmin}},
		{Priced, Assigned}:          {{role: actor.RoleAdmin}},
		{Assigned, OutForDelivery}:  {{role: actor.RoleDriver, condition: actorIsAssignedDriver}},
		{OutForDelivery, Delivered}: {{role: actor.RoleDriver, condition: actorIsAssignedDriver}},
		{Delivered, Completed}:      {{role: actor.RoleRestaurant, condition: actorIsOrderRestaurant}},
		{Pending, Cancelled}:        {{role: actor.RoleRestaurant, condition: actorIsOrderRestaurant}},
	}

	// Admins may cancel from any non-terminal state.
	for _, from := range AllStatuses() {
		if from.IsTerminal() {
			continue
		}
		key := transitionKey{from, Cancelled}
		table[key] = append(table[key], transitionRule{role: actor.RoleAdmin})
	}

	return table
}

// Authorize decides whether the actor may move the order from its current
// status to the target status. Pure decision function: no side effects and
// no I/O. Returns nil when permitted, or an error wrapping ErrUnauthorized
// carrying the rejection reason.
//
// Business-rule failures (pricing payloads, driver activity, defensive
// status re-checks) are out of scope here and are signaled separately by
// ApplyTransition.
func Authorize(a actor.Actor, o *Order, target Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	rules, ok := transitionTable()[transitionKey{o.Status(), target}]
	if !ok {
		return fmt.Errorf("%w: no %s -> %s transition exists",
			ErrUnauthorized, o.Status(), target)
	}

	for _, rule := range rules {
		if rule.role != a.Role() {
			continue
		}
		if satisfiesCondition(rule.condition, a, o) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s %s may not move order %s from %s to %s",
		ErrUnauthorized, a.Role(), a.ID(), o.ID(), o.Status(), target)
}

// CanTransition reports whether the actor may perform the transition.
// Thin boolean wrapper over Authorize for callers that do not need the reason.
func CanTransition(a actor.Actor, o *Order, target Status) bool {
	return Authorize(a, o, target) == nil
}

func satisfiesCondition(condition identityCondition, a actor.Actor, o *Order) bool {
	switch condition {
	case actorIsOrderRestaurant:
		return a.ID().IsEqual(o.RestaurantID())
	case actorIsAssignedDriver:
		return o.Driver() != nil && a.ID().IsEqual(*o.Driver())
	case noCondition:
		return true
	default:
		return false
	}
}
