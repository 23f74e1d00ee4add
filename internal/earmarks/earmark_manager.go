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

// Package earmarks is the defining package of the Earmark wrapper, and the
// only place its payload can be unwrapped. The codec is unexported: no
// other package, and no API route, can turn a stored earmark object back
// into the payment it guards. The open redemption path yields payments
// only, so reaching an earmark through it is unrepresentable rather than
// runtime-checked.
package earmarks

import (
	"context"

	"github.com/kaleido-io/payreg/internal/events"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/tickets"
	"github.com/kaleido-io/payreg/pkg/database"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
)

type Manager interface {
	// Wrap creates an earmarked payment as a single new stored object. The
	// payment value lives inside the wrapper from birth - there is never a
	// separately addressable payment object to alias.
	Wrap(ctx context.Context, caller paytypes.Identity, payment *paytypes.Payment, recipient paytypes.Identity) (*paytypes.Earmark, error)

	// RedeemEarmark consumes the ticket for an earmark anchored at a
	// register address, and yields the wrapped payment. Only the designated
	// recipient may redeem; anyone else fails with the wrapper fully
	// intact and re-attemptable.
	RedeemEarmark(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, itemID *paytypes.UUID) (*paytypes.Payment, error)
}

type earmarkManager struct {
	ctx       context.Context
	substrate substrate.Plugin
	database  database.Plugin
	events    events.EventManager
}

func NewEarmarkManager(ctx context.Context, ss substrate.Plugin, di database.Plugin, em events.EventManager) Manager {
	return &earmarkManager{
		ctx:       ctx,
		substrate: ss,
		database:  di,
		events:    em,
	}
}

// unwrap is the restricted-class codec. Unexported deliberately.
func unwrap(ctx context.Context, obj *paytypes.StoredObject) (*paytypes.Earmark, error) {
	if err := obj.RequireKind(ctx, paytypes.ObjectKindEarmark); err != nil {
		return nil, err
	}
	var wrapper paytypes.Earmark
	if err := obj.UnmarshalData(ctx, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper, nil
}

// Describe projects the reporting fields of a stored earmark without
// yielding the wrapped payment value
func Describe(ctx context.Context, obj *paytypes.StoredObject) (paymentID *paytypes.UUID, correlationID uint64, amount *paytypes.Amount, err error) {
	wrapper, err := unwrap(ctx, obj)
	if err != nil {
		return nil, 0, nil, err
	}
	return wrapper.Payment.ID, wrapper.Payment.CorrelationID, wrapper.Payment.Amount, nil
}

// PendingTicket builds the restricted-class ticket read model for a
// pending earmark object
func PendingTicket(ctx context.Context, addr *paytypes.UUID, obj *paytypes.StoredObject) (*paytypes.Ticket, error) {
	_, correlationID, amount, err := Describe(ctx, obj)
	if err != nil {
		return nil, err
	}
	return &paytypes.Ticket{
		Address:       addr,
		ItemID:        obj.ID,
		Class:         paytypes.CapabilityClassRestricted,
		CorrelationID: correlationID,
		Amount:        amount,
	}, nil
}

func (mgr *earmarkManager) Wrap(ctx context.Context, caller paytypes.Identity, payment *paytypes.Payment, recipient paytypes.Identity) (*paytypes.Earmark, error) {
	if !recipient.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgEarmarkRecipientRequired)
	}
	if recipient == payment.Payer {
		return nil, i18n.NewError(ctx, i18n.MsgEarmarkSelfOwned)
	}
	wrapper := &paytypes.Earmark{
		ID:        paytypes.NewUUID(),
		Payment:   payment,
		Recipient: recipient,
		Created:   paytypes.Now(),
	}
	obj := &paytypes.StoredObject{
		ID:    wrapper.ID,
		Kind:  paytypes.ObjectKindEarmark,
		Owner: caller,
	}
	if err := obj.SetData(wrapper); err != nil {
		return nil, err
	}
	if err := mgr.substrate.CreateObject(ctx, obj); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Earmarked payment %s (item=%s) created by %s for %s", payment.ID, wrapper.ID, caller, recipient)
	return wrapper, nil
}

func (mgr *earmarkManager) RedeemEarmark(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, itemID *paytypes.UUID) (*paytypes.Payment, error) {
	if _, err := mgr.substrate.GetObject(ctx, addr); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgRegisterNotFound, addr)
	}
	var payment *paytypes.Payment
	err := mgr.substrate.MutateObject(ctx, addr, func(ctx context.Context, regObj *paytypes.StoredObject) error {
		if err := regObj.RequireKind(ctx, paytypes.ObjectKindRegister); err != nil {
			return err
		}
		return tickets.Consume(ctx, mgr.substrate, addr, itemID, paytypes.ObjectKindEarmark, func(ctx context.Context, obj *paytypes.StoredObject) error {
			wrapper, err := unwrap(ctx, obj)
			if err != nil {
				return err
			}
			if wrapper.Recipient != caller {
				return i18n.NewError(ctx, i18n.MsgNotAuthorized, caller, addr)
			}
			payment = wrapper.Payment
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Earmark %s at register %s redeemed by %s", itemID, addr, caller)
	mgr.reportProcessed(ctx, caller, payment)
	return payment, nil
}

// reportProcessed lands the read-model updates after the value extraction
// has committed in the object store. Failures here are logged, not
// returned: the redemption itself is already final, and the reporting
// layer can be reconciled from the store's ownership log.
func (mgr *earmarkManager) reportProcessed(ctx context.Context, caller paytypes.Identity, payment *paytypes.Payment) {
	event := paytypes.NewEvent(paytypes.EventTypePaymentProcessed, payment.ID, paytypes.JSONObject{
		"correlationId": payment.CorrelationID,
	})
	if err := mgr.events.EmitEvent(ctx, event); err != nil {
		log.L(ctx).Errorf("Failed to emit %s event for payment %s: %s", event.Type, payment.ID, err)
	}
	if err := mgr.database.UpsertPayment(ctx, &paytypes.PaymentView{
		ID:            payment.ID,
		CorrelationID: payment.CorrelationID,
		Amount:        payment.Amount,
		From:          payment.Payer,
		To:            caller,
		Status:        paytypes.PaymentStatusProcessed,
		Created:       payment.Created,
		Updated:       paytypes.Now(),
	}); err != nil {
		log.L(ctx).Errorf("Failed to update reporting row for payment %s: %s", payment.ID, err)
	}
}
