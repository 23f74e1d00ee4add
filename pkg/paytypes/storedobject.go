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

package paytypes

import (
	"context"
	"encoding/json"

	"github.com/kaleido-io/payreg/internal/i18n"
)

// ObjectKind discriminates the payload carried by a stored object
type ObjectKind string

const (
	ObjectKindPayment  ObjectKind = "payment"
	ObjectKindEarmark  ObjectKind = "earmark"
	ObjectKindRegister ObjectKind = "register"
)

// StoredObject is the unit of the external linearizable object store: a
// globally unique identity, exactly one current owner, and a version that
// advances on every atomic mutation. The store - not this process - is the
// authority for ownership and mutation ordering.
type StoredObject struct {
	ID      *UUID      `json:"id"`
	Kind    ObjectKind `json:"kind"`
	Owner   Identity   `json:"owner"`
	Version int64      `json:"version"`
	Data    JSONObject `json:"data"`

	deleted bool
}

// SetData serializes the payload into the object
func (so *StoredObject) SetData(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgResponseMarshalError)
	}
	var data JSONObject
	if err := json.Unmarshal(b, &data); err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgJSONDecodeFailed)
	}
	so.Data = data
	return nil
}

// UnmarshalData deserializes the payload from the object
func (so *StoredObject) UnmarshalData(ctx context.Context, v interface{}) error {
	b, _ := json.Marshal(so.Data)
	if err := json.Unmarshal(b, v); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
	}
	return nil
}

// RequireKind guards payload decoding against the wrong object class. The
// package structure makes class confusion unreachable through the public
// API; this remains as the storage-level backstop.
func (so *StoredObject) RequireKind(ctx context.Context, kind ObjectKind) error {
	if so.Kind != kind {
		return i18n.NewError(ctx, i18n.MsgWrongObjectKind, so.ID, so.Kind, kind)
	}
	return nil
}

// MarkDeleted flags the object for removal when the holding mutation
// commits - value extraction destroys the record
func (so *StoredObject) MarkDeleted() {
	so.deleted = true
}

func (so *StoredObject) IsDeleted() bool {
	return so.deleted
}

// OwnershipChange is one entry in the substrate's ordered log of ownership
// reassignments, consumed by the reporting layer for reconciliation
type OwnershipChange struct {
	Sequence  int64      `json:"sequence"`
	ItemID    *UUID      `json:"itemId"`
	From      Identity   `json:"from"`
	To        Identity   `json:"to"`
	Timestamp *Timestamp `json:"timestamp"`
}
