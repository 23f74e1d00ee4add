// Copyright © 2021 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paytypes

// EventType indicates what the event means, as well as what the Reference in the event refers to
type EventType string

const (
	// EventTypePaymentSent is emitted on every ownership transfer, so a payee
	// can reconcile incoming payments before settlement
	EventTypePaymentSent EventType = "payment_sent"
	// EventTypePaymentProcessed is emitted when a receivable is consumed and
	// its value payload extracted - the end of a payment's lifetime
	EventTypePaymentProcessed EventType = "payment_processed"
	// EventTypeRegisterCreated is emitted when a new register address is assigned
	EventTypeRegisterCreated EventType = "register_created"
	// EventTypeControllerReassigned is emitted when a register's controlling identity changes
	EventTypeControllerReassigned EventType = "controller_reassigned"
	// EventTypePrincipalAdded is emitted when an identity is added to a register's authorized principals
	EventTypePrincipalAdded EventType = "principal_added"
	// EventTypePrincipalRemoved is emitted when an identity is removed from a register's authorized principals
	EventTypePrincipalRemoved EventType = "principal_removed"
)

// Event is an activity in the system, delivered reliably to applications,
// that indicates something has happened to a payment or a register
type Event struct {
	ID        *UUID      `json:"id"`
	Sequence  int64      `json:"sequence"`
	Type      EventType  `json:"type"`
	Reference *UUID      `json:"reference"`
	Info      JSONObject `json:"info,omitempty"`
	Created   *Timestamp `json:"created"`
}

func NewEvent(t EventType, ref *UUID, info JSONObject) *Event {
	return &Event{
		ID:        NewUUID(),
		Type:      t,
		Reference: ref,
		Info:      info,
		Created:   Now(),
	}
}

// TransferEvent is the durable, inspectable result of one ownership transfer
type TransferEvent struct {
	ItemID        *UUID    `json:"itemId"`
	CorrelationID uint64   `json:"correlationId"`
	Amount        *Amount  `json:"amount"`
	From          Identity `json:"from"`
	To            Identity `json:"to"`
}

// PaymentStatus tracks a payment row in the reporting store
type PaymentStatus string

const (
	PaymentStatusSent      PaymentStatus = "sent"
	PaymentStatusProcessed PaymentStatus = "processed"
)

// PaymentView is the reporting row for one payment, reconciled from the
// event stream - the display layer reads it, nothing mutates core state
// through it
type PaymentView struct {
	ID            *UUID         `json:"id"`
	CorrelationID uint64        `json:"correlationId"`
	Amount        *Amount       `json:"amount"`
	From          Identity      `json:"from"`
	To            Identity      `json:"to"`
	Status        PaymentStatus `json:"status"`
	Created       *Timestamp    `json:"created"`
	Updated       *Timestamp    `json:"updated"`
}
