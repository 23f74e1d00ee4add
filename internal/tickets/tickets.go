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

// Package tickets holds the item-level plumbing shared by the two
// redemption paths. A receiving ticket is not a stored object in its own
// right: it is the fact that an item is currently anchored at a register's
// address. Consuming it is a single atomic mutation that destroys the item,
// so a ticket can be claimed at most once no matter how many principals
// race for it.
package tickets

import (
	"context"

	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
)

// Consume claims the receivable for one item anchored at a register
// address, exactly once. The caller must already hold the register
// aggregate's mutation (register before item is the lock order), which is
// what makes the existence check race-free: an item anchored at the
// register can only leave the store through a consumption serialized
// behind us.
//
// extract runs with the item exclusively held and must capture the value
// payload; an error from it aborts the claim with no state change. On
// success the item is destroyed in the same atomic step.
func Consume(ctx context.Context, ss substrate.Plugin, addr *paytypes.UUID, itemID *paytypes.UUID, kind paytypes.ObjectKind, extract func(ctx context.Context, obj *paytypes.StoredObject) error) error {
	anchored := addr.Identity()
	obj, err := ss.GetObject(ctx, itemID)
	if err != nil {
		// Destroyed by an earlier claim
		return i18n.NewError(ctx, i18n.MsgAlreadyConsumed, itemID, addr)
	}
	if obj.Owner != anchored {
		return i18n.NewError(ctx, i18n.MsgAlreadyConsumed, itemID, addr)
	}
	return ss.MutateObject(ctx, itemID, func(ctx context.Context, obj *paytypes.StoredObject) error {
		if obj.Owner != anchored {
			return i18n.NewError(ctx, i18n.MsgAlreadyConsumed, itemID, addr)
		}
		if err := obj.RequireKind(ctx, kind); err != nil {
			return err
		}
		if err := extract(ctx, obj); err != nil {
			return err
		}
		obj.MarkDeleted()
		return nil
	})
}

// FromPayment builds the open-class ticket read model for a pending
// payment object
func FromPayment(ctx context.Context, addr *paytypes.UUID, obj *paytypes.StoredObject) (*paytypes.Ticket, error) {
	if err := obj.RequireKind(ctx, paytypes.ObjectKindPayment); err != nil {
		return nil, err
	}
	var payment paytypes.Payment
	if err := obj.UnmarshalData(ctx, &payment); err != nil {
		return nil, err
	}
	return &paytypes.Ticket{
		Address:       addr,
		ItemID:        obj.ID,
		Class:         paytypes.CapabilityClassOpen,
		CorrelationID: payment.CorrelationID,
		Amount:        payment.Amount,
	}, nil
}
