// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Push channel event names.
const (
	EventConnected     = "auth:connected"
	EventForcedLogout  = "auth:logout"
	EventTokenInvalid  = "auth:token-invalid"
	EventUserDeleted   = "user:deleted"
	EventUserSuspended = "user:suspended"
)

// PushEvent is a server-to-client message of the push channel.
type PushEvent struct {
	Event string        `json:"event"`
	Data  PushEventData `json:"data"`
}

// PushEventData is the payload of a [PushEvent].
type PushEventData struct {
	UserID int64  `json:"userId,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// IsInvalidation reports whether e terminates the receiving session.
func (e PushEvent) IsInvalidation() bool {
	switch e.Event {
	case EventForcedLogout, EventTokenInvalid, EventUserDeleted, EventUserSuspended:
		return true
	}
	return false
}

// NewPushEvent builds a [PushEvent].
func NewPushEvent(event string, userID int64, reason string) PushEvent {
	return PushEvent{Event: event, Data: PushEventData{UserID: userID, Reason: reason}}
}
