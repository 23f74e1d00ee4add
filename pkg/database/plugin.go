// Copyright © 2022 Kaleido, Inc.
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

package database

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// Plugin is the interface implemented by each reporting database plugin.
// This store is strictly a read model for the display/reporting boundary:
// the event log, register snapshots and payment reconciliation rows.
// Nothing here is authoritative for ownership - that is the object store.
type Plugin interface {
	paytypes.Named

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// RunAsGroup instructs the database plugin that all database operations
	// performed within the context function can be grouped into a single
	// transaction (if supported)
	RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error

	// InsertEvent inserts an event, assigning it a new ordered sequence
	InsertEvent(ctx context.Context, event *paytypes.Event) error

	// GetEventByID gets one event
	GetEventByID(ctx context.Context, id *paytypes.UUID) (*paytypes.Event, error)

	// GetEvents returns events after the given sequence, in sequence order
	GetEvents(ctx context.Context, afterSequence int64, limit int) ([]*paytypes.Event, error)

	// UpsertRegister stores the latest snapshot of register state
	UpsertRegister(ctx context.Context, register *paytypes.Register) error

	// GetRegisterByAddress gets a register snapshot by its stable address
	GetRegisterByAddress(ctx context.Context, address *paytypes.UUID) (*paytypes.Register, error)

	// GetRegisters lists register snapshots
	GetRegisters(ctx context.Context, limit, skip int) ([]*paytypes.Register, error)

	// UpsertPayment stores a payment reconciliation row
	UpsertPayment(ctx context.Context, payment *paytypes.PaymentView) error

	// GetPaymentByID gets one payment reconciliation row
	GetPaymentByID(ctx context.Context, id *paytypes.UUID) (*paytypes.PaymentView, error)

	// GetPaymentsByStatus lists payment rows in a given status, newest first
	GetPaymentsByStatus(ctx context.Context, status paytypes.PaymentStatus, limit int) ([]*paytypes.PaymentView, error)
}

// Callbacks is the interface provided to the database plugin, to allow it
// to request orchestration of events when new rows land
type Callbacks interface {
	// EventCreated fires after an event row has been committed, with its sequence
	EventCreated(sequence int64)
}

// Capabilities defines the capabilities a plugin can report as implementing or not
type Capabilities struct {
	ClusterSafe bool
}
