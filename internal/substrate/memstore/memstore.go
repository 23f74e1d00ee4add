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

package memstore

import (
	"context"
	"sync"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
)

// MemStore is the reference implementation of the linearizable object store
// contract, used in dev mode and by the core test suite. Serialization is
// per object: each object carries its own lock, so mutations of different
// objects proceed fully in parallel, while mutations of the same object are
// totally ordered. Callers that hold more than one object lock always take
// the aggregate (register) before the item, so lock ordering is acyclic.
type MemStore struct {
	ctx       context.Context
	callbacks substrate.Callbacks

	mux     sync.Mutex // guards the maps and the log, never held during fn callbacks
	objects map[paytypes.UUID]*storedEntry
	ordinal int64 // creation order tiebreaker for owner listing
	logSeq  int64
	changes []*paytypes.OwnershipChange
}

type storedEntry struct {
	lock    sync.Mutex
	ordinal int64
	obj     *paytypes.StoredObject
	deleted bool
}

func (ms *MemStore) Name() string {
	return "memstore"
}

func (ms *MemStore) InitPrefix(prefix config.Prefix) {
}

func (ms *MemStore) Init(ctx context.Context, prefix config.Prefix, callbacks substrate.Callbacks) error {
	*ms = MemStore{
		ctx:       ctx,
		callbacks: callbacks,
		objects:   make(map[paytypes.UUID]*storedEntry),
	}
	log.L(ctx).Debugf("In-memory object store initialized")
	return nil
}

func (ms *MemStore) Capabilities() *substrate.Capabilities {
	return &substrate.Capabilities{Durable: false}
}

// copyObject gives callers and mutation callbacks their own deep copy, so a
// failed mutation can never leave partially applied state visible
func copyObject(obj *paytypes.StoredObject) *paytypes.StoredObject {
	cp := &paytypes.StoredObject{
		ID:      obj.ID,
		Kind:    obj.Kind,
		Owner:   obj.Owner,
		Version: obj.Version,
	}
	if obj.Data != nil {
		data := make(paytypes.JSONObject, len(obj.Data))
		for k, v := range obj.Data {
			data[k] = v
		}
		cp.Data = data
	}
	return cp
}

func (ms *MemStore) CreateObject(ctx context.Context, obj *paytypes.StoredObject) error {
	if obj == nil || obj.ID == nil {
		return i18n.NewError(ctx, i18n.MsgNilOrNullObject)
	}
	ms.mux.Lock()
	defer ms.mux.Unlock()
	if _, ok := ms.objects[*obj.ID]; ok {
		return i18n.NewError(ctx, i18n.MsgObjectIDExists, obj.ID)
	}
	ms.ordinal++
	stored := copyObject(obj)
	stored.Version = 1
	ms.objects[*obj.ID] = &storedEntry{
		ordinal: ms.ordinal,
		obj:     stored,
	}
	log.L(ctx).Debugf("Created %s object %s owned by %s", obj.Kind, obj.ID, obj.Owner)
	return nil
}

func (ms *MemStore) getEntry(id *paytypes.UUID) *storedEntry {
	ms.mux.Lock()
	defer ms.mux.Unlock()
	e := ms.objects[*id]
	if e == nil || e.deleted {
		return nil
	}
	return e
}

func (ms *MemStore) GetObject(ctx context.Context, id *paytypes.UUID) (*paytypes.StoredObject, error) {
	if id == nil {
		return nil, i18n.NewError(ctx, i18n.MsgNilOrNullObject)
	}
	e := ms.getEntry(id)
	if e == nil {
		return nil, i18n.NewError(ctx, i18n.MsgObjectNotFound, id)
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	return copyObject(e.obj), nil
}

func (ms *MemStore) GetObjectsOwnedBy(ctx context.Context, owner paytypes.Identity) ([]*paytypes.StoredObject, error) {
	ms.mux.Lock()
	entries := make([]*storedEntry, 0)
	for _, e := range ms.objects {
		if !e.deleted {
			entries = append(entries, e)
		}
	}
	ms.mux.Unlock()

	owned := make([]*paytypes.StoredObject, 0)
	for _, e := range entries {
		e.lock.Lock()
		if e.obj.Owner == owner && !e.deleted {
			owned = append(owned, copyObject(e.obj))
		}
		e.lock.Unlock()
	}
	// Creation order
	for i := 1; i < len(owned); i++ {
		for j := i; j > 0 && ms.ordinalOf(owned[j].ID) < ms.ordinalOf(owned[j-1].ID); j-- {
			owned[j], owned[j-1] = owned[j-1], owned[j]
		}
	}
	return owned, nil
}

func (ms *MemStore) ordinalOf(id *paytypes.UUID) int64 {
	ms.mux.Lock()
	defer ms.mux.Unlock()
	if e := ms.objects[*id]; e != nil {
		return e.ordinal
	}
	return 0
}

func (ms *MemStore) MutateObject(ctx context.Context, id *paytypes.UUID, fn func(ctx context.Context, obj *paytypes.StoredObject) error) error {
	if id == nil {
		return i18n.NewError(ctx, i18n.MsgNilOrNullObject)
	}
	e := ms.getEntry(id)
	if e == nil {
		return i18n.NewError(ctx, i18n.MsgObjectNotFound, id)
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	if e.deleted {
		// Removed between lookup and lock
		return i18n.NewError(ctx, i18n.MsgObjectNotFound, id)
	}

	previousOwner := e.obj.Owner
	working := copyObject(e.obj)
	if err := fn(ctx, working); err != nil {
		return err
	}

	if working.IsDeleted() {
		ms.mux.Lock()
		e.deleted = true
		delete(ms.objects, *id)
		ms.mux.Unlock()
		log.L(ctx).Debugf("Destroyed %s object %s", e.obj.Kind, id)
		return nil
	}

	working.Version = e.obj.Version + 1
	e.obj = working
	if working.Owner != previousOwner {
		ms.recordOwnershipChange(ctx, id, previousOwner, working.Owner)
	}
	return nil
}

func (ms *MemStore) recordOwnershipChange(ctx context.Context, id *paytypes.UUID, from, to paytypes.Identity) {
	ms.mux.Lock()
	ms.logSeq++
	change := &paytypes.OwnershipChange{
		Sequence:  ms.logSeq,
		ItemID:    id,
		From:      from,
		To:        to,
		Timestamp: paytypes.Now(),
	}
	ms.changes = append(ms.changes, change)
	callbacks := ms.callbacks
	ms.mux.Unlock()

	log.L(ctx).Debugf("Ownership of %s changed %s -> %s (seq=%d)", id, from, to, change.Sequence)
	if callbacks != nil {
		callbacks.OwnershipChanged(change)
	}
}

func (ms *MemStore) OwnershipChanges(ctx context.Context, afterSequence int64, limit int) ([]*paytypes.OwnershipChange, error) {
	ms.mux.Lock()
	defer ms.mux.Unlock()
	changes := make([]*paytypes.OwnershipChange, 0, limit)
	for _, c := range ms.changes {
		if c.Sequence > afterSequence {
			changes = append(changes, c)
			if limit > 0 && len(changes) >= limit {
				break
			}
		}
	}
	return changes, nil
}
