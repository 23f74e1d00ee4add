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

package substrate

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// Plugin is the interface implemented by the external linearizable object
// store this node is bound to. The store - not this process - is the
// authority that every object has exactly one current owner, and that
// mutations of the same object are atomic and totally ordered. The core
// only ever relies on those two guarantees:
//
//   - MutateObject serializes against other mutations of the SAME object
//     only. Transfers to a register's address mutate the transferred item,
//     never the register, so concurrent payers never contend with each
//     other or with the register's own controller operations.
//
//   - An operation either commits atomically or fails with no state change.
//     There is no blocking or retry primitive at this layer.
type Plugin interface {
	paytypes.Named

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// CreateObject stores a new object, rejecting duplicate identities
	CreateObject(ctx context.Context, obj *paytypes.StoredObject) error

	// GetObject retrieves a snapshot of one object by its globally unique identity
	GetObject(ctx context.Context, id *paytypes.UUID) (*paytypes.StoredObject, error)

	// GetObjectsOwnedBy lists the objects currently owned by an identity, in
	// creation order. This is the explicit discovery query behind pending
	// receivable listing - there is no ambient scan.
	GetObjectsOwnedBy(ctx context.Context, owner paytypes.Identity) ([]*paytypes.StoredObject, error)

	// MutateObject invokes fn with the object exclusively held, then commits
	// the mutated state (or removes the object, if fn marked it deleted) as
	// one atomic step, advancing the object version. If fn returns an error
	// no state changes. Nested MutateObject calls on other objects are
	// allowed; the caller owns lock ordering (aggregate before item).
	MutateObject(ctx context.Context, id *paytypes.UUID, fn func(ctx context.Context, obj *paytypes.StoredObject) error) error

	// OwnershipChanges reads the ordered ownership-change log, for
	// reconciliation by the reporting layer
	OwnershipChanges(ctx context.Context, afterSequence int64, limit int) ([]*paytypes.OwnershipChange, error)
}

// Callbacks is the interface provided to the substrate plugin, to allow it
// to report ownership changes as they commit
type Callbacks interface {
	OwnershipChanged(change *paytypes.OwnershipChange)
}

// Capabilities defines the capabilities a plugin can report as implementing or not
type Capabilities struct {
	// Durable is false for stores that lose state on restart (the reference in-memory store)
	Durable bool
}
