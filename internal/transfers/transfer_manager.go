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

// Package transfers is the ownership transfer channel. A transfer mutates
// exactly one object: the item whose owner changes. Transfers addressed to
// a register never touch the register object, so concurrent payers to the
// same register contend with nobody - not with each other, and not with
// the register's own controller operations. The register only comes into
// play at redemption time.
package transfers

import (
	"context"

	"github.com/kaleido-io/payreg/internal/earmarks"
	"github.com/kaleido-io/payreg/internal/events"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/database"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
)

type Manager interface {
	// CreatePayment mints a new payment record owned by the caller
	CreatePayment(ctx context.Context, caller paytypes.Identity, correlationID uint64, amount *paytypes.Amount) (*paytypes.Payment, error)

	// CreateEarmarkedPayment mints a payment already sealed inside an
	// earmark wrapper, atomically and by the paying party only
	CreateEarmarkedPayment(ctx context.Context, caller paytypes.Identity, correlationID uint64, amount *paytypes.Amount, recipient paytypes.Identity) (*paytypes.Earmark, error)

	// Transfer atomically reassigns ownership of an item the caller
	// exclusively owns. There is no other error path: a caller that does
	// not own the item is rejected with no state change. An item anchored
	// at a register address can never be the subject of a further direct
	// transfer, because no caller authenticates as that address.
	Transfer(ctx context.Context, caller paytypes.Identity, itemID *paytypes.UUID, dest paytypes.Identity) (*paytypes.TransferEvent, error)
}

type transferManager struct {
	ctx       context.Context
	substrate substrate.Plugin
	database  database.Plugin
	events    events.EventManager
	earmarks  earmarks.Manager
}

func NewTransferManager(ctx context.Context, ss substrate.Plugin, di database.Plugin, em events.EventManager, ek earmarks.Manager) Manager {
	return &transferManager{
		ctx:       ctx,
		substrate: ss,
		database:  di,
		events:    em,
		earmarks:  ek,
	}
}

func (tm *transferManager) newPayment(ctx context.Context, caller paytypes.Identity, correlationID uint64, amount *paytypes.Amount) (*paytypes.Payment, error) {
	if !caller.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentity)
	}
	if amount == nil || !amount.IsPositive() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAmount)
	}
	return &paytypes.Payment{
		ID:            paytypes.NewUUID(),
		CorrelationID: correlationID,
		Amount:        amount,
		Payer:         caller,
		Created:       paytypes.Now(),
	}, nil
}

func (tm *transferManager) CreatePayment(ctx context.Context, caller paytypes.Identity, correlationID uint64, amount *paytypes.Amount) (*paytypes.Payment, error) {
	payment, err := tm.newPayment(ctx, caller, correlationID, amount)
	if err != nil {
		return nil, err
	}
	obj := &paytypes.StoredObject{
		ID:    payment.ID,
		Kind:  paytypes.ObjectKindPayment,
		Owner: caller,
	}
	if err := obj.SetData(payment); err != nil {
		return nil, err
	}
	if err := tm.substrate.CreateObject(ctx, obj); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Payment %s (correlation=%d) created by %s", payment.ID, correlationID, caller)
	return payment, nil
}

func (tm *transferManager) CreateEarmarkedPayment(ctx context.Context, caller paytypes.Identity, correlationID uint64, amount *paytypes.Amount, recipient paytypes.Identity) (*paytypes.Earmark, error) {
	payment, err := tm.newPayment(ctx, caller, correlationID, amount)
	if err != nil {
		return nil, err
	}
	return tm.earmarks.Wrap(ctx, caller, payment, recipient)
}

// describeItem reads the transfer-event fields out of the item being
// moved, without the channel ever holding the earmark codec itself
func describeItem(ctx context.Context, obj *paytypes.StoredObject) (paymentID *paytypes.UUID, correlationID uint64, amount *paytypes.Amount, err error) {
	switch obj.Kind {
	case paytypes.ObjectKindPayment:
		var payment paytypes.Payment
		if err := obj.UnmarshalData(ctx, &payment); err != nil {
			return nil, 0, nil, err
		}
		return payment.ID, payment.CorrelationID, payment.Amount, nil
	case paytypes.ObjectKindEarmark:
		return earmarks.Describe(ctx, obj)
	default:
		return nil, 0, nil, i18n.NewError(ctx, i18n.MsgWrongObjectKind, obj.ID, obj.Kind, paytypes.ObjectKindPayment)
	}
}

func (tm *transferManager) Transfer(ctx context.Context, caller paytypes.Identity, itemID *paytypes.UUID, dest paytypes.Identity) (*paytypes.TransferEvent, error) {
	if !dest.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentity)
	}
	var transfer *paytypes.TransferEvent
	var paymentID *paytypes.UUID
	err := tm.substrate.MutateObject(ctx, itemID, func(ctx context.Context, obj *paytypes.StoredObject) error {
		if obj.Owner != caller {
			return i18n.NewError(ctx, i18n.MsgOwnershipViolation, caller, itemID)
		}
		id, correlationID, amount, err := describeItem(ctx, obj)
		if err != nil {
			return err
		}
		obj.Owner = dest
		paymentID = id
		transfer = &paytypes.TransferEvent{
			ItemID:        obj.ID,
			CorrelationID: correlationID,
			Amount:        amount,
			From:          caller,
			To:            dest,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Item %s transferred %s -> %s (correlation=%d)", itemID, caller, dest, transfer.CorrelationID)
	tm.reportSent(ctx, paymentID, transfer)
	return transfer, nil
}

// reportSent lands the read-model updates after the ownership change has
// committed. Failures are logged, not returned: the transfer is already
// final, and the reporting layer reconciles from the store's ownership log.
func (tm *transferManager) reportSent(ctx context.Context, paymentID *paytypes.UUID, transfer *paytypes.TransferEvent) {
	event := paytypes.NewEvent(paytypes.EventTypePaymentSent, transfer.ItemID, paytypes.JSONObject{
		"correlationId": transfer.CorrelationID,
		"from":          transfer.From,
		"to":            transfer.To,
		"amount":        transfer.Amount,
	})
	if err := tm.events.EmitEvent(ctx, event); err != nil {
		log.L(ctx).Errorf("Failed to emit %s event for item %s: %s", event.Type, transfer.ItemID, err)
	}
	now := paytypes.Now()
	if err := tm.database.UpsertPayment(ctx, &paytypes.PaymentView{
		ID:            paymentID,
		CorrelationID: transfer.CorrelationID,
		Amount:        transfer.Amount,
		From:          transfer.From,
		To:            transfer.To,
		Status:        paytypes.PaymentStatusSent,
		Created:       now,
		Updated:       now,
	}); err != nil {
		log.L(ctx).Errorf("Failed to update reporting row for payment %s: %s", paymentID, err)
	}
}
