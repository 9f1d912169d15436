package service

import (
	"context"
	"time"
)

// AccountEventType names a state change on an account.
type AccountEventType string

const (
	AccountCreated     AccountEventType = "account.created"
	AccountActivated   AccountEventType = "account.activated"
	AccountDeactivated AccountEventType = "account.deactivated"
	AccountRoleAdded   AccountEventType = "account.role_added"
	AccountRoleRemoved AccountEventType = "account.role_removed"
)

// AccountEvent is published after a successful account mutation.
// It never carries credential material.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	AccountID  string           `json:"account_id"`
	Role       string           `json:"role,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for downstream consumers
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
