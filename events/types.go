// SPDX-License-Identifier: GPL-3.0-only

package events

import "time"

const (
	UserSignedUp          = "auth.signup"
	SubscriptionCreated   = "subscription.created"
	SubscriptionCancelled = "subscription.cancelled"
	CollectionCreated     = "collection.created"
)

// Event is the JSON payload published to the linklet.events exchange.
// Downstream consumers (webhooks, email digests, future payment
// reconciliation) key off RoutingKey and Data.
type Event struct {
	RoutingKey string         `json:"routing_key"`
	UserID     uint           `json:"user_id"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
