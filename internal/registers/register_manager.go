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

// Package registers manages the register aggregate: the stable addressing
// anchor payments are routed to, and the gate their redemption goes
// through. A register never owns the items anchored at its address.
// Controller operations, authorization edits and redemptions all serialize
// on the register object; incoming transfers do not.
package registers

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/earmarks"
	"github.com/kaleido-io/payreg/internal/events"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/tickets"
	"github.com/kaleido-io/payreg/pkg/database"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
	cache "github.com/patrickmn/go-cache"
)

// Policy decides whether a caller may redeem at a register. Evaluated
// exactly once per redemption attempt, under the register's mutation, so
// the state it reads is the state the redemption commits against. It must
// be deterministic and must not perform I/O.
type Policy interface {
	Allow(ctx context.Context, caller paytypes.Identity, register *paytypes.Register) bool
}

// PrincipalSetPolicy is the default policy: any identity on the register's
// authorized principal list may redeem
type PrincipalSetPolicy struct{}

func (PrincipalSetPolicy) Allow(ctx context.Context, caller paytypes.Identity, register *paytypes.Register) bool {
	return register.HasPrincipal(caller)
}

type Manager interface {
	// CreateRegister creates a register whose address is assigned once and
	// never changes
	CreateRegister(ctx context.Context, controller paytypes.Identity) (*paytypes.Register, error)

	// GetRegister reads the register snapshot for display. Cached and
	// served from the reporting store - never used for authorization.
	GetRegister(ctx context.Context, addr *paytypes.UUID) (*paytypes.Register, error)

	// GetRegisters lists register snapshots from the reporting store
	GetRegisters(ctx context.Context, limit, skip int) ([]*paytypes.Register, error)

	// ReassignController hands the register to a new controller. Only the
	// controller at evaluation time may do this; the address is untouched.
	ReassignController(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, newController paytypes.Identity) (*paytypes.Register, error)

	// AddPrincipal grants an identity redemption rights, controller only
	AddPrincipal(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, principal paytypes.Identity) (*paytypes.Register, error)

	// RemovePrincipal revokes an identity's redemption rights, controller only
	RemovePrincipal(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, principal paytypes.Identity) (*paytypes.Register, error)

	// ListPending is the explicit discovery query for the receivables
	// currently anchored at the register's address
	ListPending(ctx context.Context, addr *paytypes.UUID) ([]*paytypes.Ticket, error)

	// RedeemPayment consumes the ticket for a payment anchored at the
	// register, subject to the register's authorization policy, and yields
	// the payment. Not idempotent: a second attempt on the same item fails.
	RedeemPayment(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, itemID *paytypes.UUID) (*paytypes.Payment, error)
}

type registerManager struct {
	ctx       context.Context
	substrate substrate.Plugin
	database  database.Plugin
	events    events.EventManager
	policy    Policy
	snapshots *cache.Cache
}

func NewRegisterManager(ctx context.Context, ss substrate.Plugin, di database.Plugin, em events.EventManager, policy Policy) Manager {
	if policy == nil {
		policy = PrincipalSetPolicy{}
	}
	return &registerManager{
		ctx:       ctx,
		substrate: ss,
		database:  di,
		events:    em,
		policy:    policy,
		snapshots: cache.New(
			config.GetDuration(config.RegisterCacheTTL),
			config.GetDuration(config.RegisterCacheInterval),
		),
	}
}

func decodeRegister(ctx context.Context, obj *paytypes.StoredObject) (*paytypes.Register, error) {
	if err := obj.RequireKind(ctx, paytypes.ObjectKindRegister); err != nil {
		return nil, err
	}
	var register paytypes.Register
	if err := obj.UnmarshalData(ctx, &register); err != nil {
		return nil, err
	}
	return &register, nil
}

func (rm *registerManager) CreateRegister(ctx context.Context, controller paytypes.Identity) (*paytypes.Register, error) {
	if !controller.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentity)
	}
	now := paytypes.Now()
	register := &paytypes.Register{
		Address:              paytypes.NewUUID(),
		Controller:           controller,
		AuthorizedPrincipals: []paytypes.Identity{},
		Created:              now,
		Updated:              now,
	}
	obj := &paytypes.StoredObject{
		ID:    register.Address,
		Kind:  paytypes.ObjectKindRegister,
		Owner: controller,
	}
	if err := obj.SetData(register); err != nil {
		return nil, err
	}
	if err := rm.substrate.CreateObject(ctx, obj); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Register %s created with controller %s", register.Address, controller)
	rm.report(ctx, register, paytypes.EventTypeRegisterCreated, paytypes.JSONObject{
		"controller": controller,
	})
	return register, nil
}

func (rm *registerManager) GetRegister(ctx context.Context, addr *paytypes.UUID) (*paytypes.Register, error) {
	if cached, ok := rm.snapshots.Get(addr.String()); ok {
		return cached.(*paytypes.Register), nil
	}
	register, err := rm.database.GetRegisterByAddress(ctx, addr)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, i18n.NewError(ctx, i18n.MsgRegisterNotFound, addr)
	}
	rm.snapshots.Set(addr.String(), register, cache.DefaultExpiration)
	return register, nil
}

func (rm *registerManager) GetRegisters(ctx context.Context, limit, skip int) ([]*paytypes.Register, error) {
	return rm.database.GetRegisters(ctx, limit, skip)
}

// updateRegister runs a controller-checked mutation atomically under the
// register's exclusive hold. The controller check and the edit commit as
// one step - a reassignment racing in cannot leave a stale controller's
// edit applied.
func (rm *registerManager) updateRegister(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, update func(ctx context.Context, register *paytypes.Register) error) (*paytypes.Register, error) {
	if _, err := rm.substrate.GetObject(ctx, addr); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgRegisterNotFound, addr)
	}
	var register *paytypes.Register
	err := rm.substrate.MutateObject(ctx, addr, func(ctx context.Context, obj *paytypes.StoredObject) error {
		decoded, err := decodeRegister(ctx, obj)
		if err != nil {
			return err
		}
		if decoded.Controller != caller {
			return i18n.NewError(ctx, i18n.MsgNotController, caller, addr)
		}
		if err := update(ctx, decoded); err != nil {
			return err
		}
		decoded.Updated = paytypes.Now()
		obj.Owner = decoded.Controller
		if err := obj.SetData(decoded); err != nil {
			return err
		}
		register = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return register, nil
}

func (rm *registerManager) ReassignController(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, newController paytypes.Identity) (*paytypes.Register, error) {
	if !newController.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentity)
	}
	register, err := rm.updateRegister(ctx, caller, addr, func(ctx context.Context, register *paytypes.Register) error {
		register.Controller = newController
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Register %s controller reassigned %s -> %s", addr, caller, newController)
	rm.report(ctx, register, paytypes.EventTypeControllerReassigned, paytypes.JSONObject{
		"from": caller,
		"to":   newController,
	})
	return register, nil
}

func (rm *registerManager) AddPrincipal(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, principal paytypes.Identity) (*paytypes.Register, error) {
	if !principal.IsSpecified() {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidIdentity)
	}
	register, err := rm.updateRegister(ctx, caller, addr, func(ctx context.Context, register *paytypes.Register) error {
		if !register.AddPrincipal(principal) {
			return i18n.NewError(ctx, i18n.MsgPrincipalAlreadyListed, principal, addr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rm.report(ctx, register, paytypes.EventTypePrincipalAdded, paytypes.JSONObject{
		"principal": principal,
	})
	return register, nil
}

func (rm *registerManager) RemovePrincipal(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, principal paytypes.Identity) (*paytypes.Register, error) {
	register, err := rm.updateRegister(ctx, caller, addr, func(ctx context.Context, register *paytypes.Register) error {
		if !register.RemovePrincipal(principal) {
			return i18n.NewError(ctx, i18n.MsgPrincipalNotListed, principal, addr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rm.report(ctx, register, paytypes.EventTypePrincipalRemoved, paytypes.JSONObject{
		"principal": principal,
	})
	return register, nil
}

func (rm *registerManager) ListPending(ctx context.Context, addr *paytypes.UUID) ([]*paytypes.Ticket, error) {
	obj, err := rm.substrate.GetObject(ctx, addr)
	if err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgRegisterNotFound, addr)
	}
	if err := obj.RequireKind(ctx, paytypes.ObjectKindRegister); err != nil {
		return nil, err
	}
	anchored, err := rm.substrate.GetObjectsOwnedBy(ctx, addr.Identity())
	if err != nil {
		return nil, err
	}
	pending := make([]*paytypes.Ticket, 0, len(anchored))
	for _, item := range anchored {
		var ticket *paytypes.Ticket
		switch item.Kind {
		case paytypes.ObjectKindPayment:
			ticket, err = tickets.FromPayment(ctx, addr, item)
		case paytypes.ObjectKindEarmark:
			ticket, err = earmarks.PendingTicket(ctx, addr, item)
		default:
			log.L(ctx).Warnf("Skipping %s object %s anchored at register %s", item.Kind, item.ID, addr)
			continue
		}
		if err != nil {
			return nil, err
		}
		pending = append(pending, ticket)
	}
	return pending, nil
}

func (rm *registerManager) RedeemPayment(ctx context.Context, caller paytypes.Identity, addr *paytypes.UUID, itemID *paytypes.UUID) (*paytypes.Payment, error) {
	if _, err := rm.substrate.GetObject(ctx, addr); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgRegisterNotFound, addr)
	}
	var payment *paytypes.Payment
	err := rm.substrate.MutateObject(ctx, addr, func(ctx context.Context, obj *paytypes.StoredObject) error {
		register, err := decodeRegister(ctx, obj)
		if err != nil {
			return err
		}
		if !rm.policy.Allow(ctx, caller, register) {
			return i18n.NewError(ctx, i18n.MsgNotAuthorized, caller, addr)
		}
		return tickets.Consume(ctx, rm.substrate, addr, itemID, paytypes.ObjectKindPayment, func(ctx context.Context, item *paytypes.StoredObject) error {
			var decoded paytypes.Payment
			if err := item.UnmarshalData(ctx, &decoded); err != nil {
				return err
			}
			payment = &decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Payment %s at register %s redeemed by %s", itemID, addr, caller)
	rm.reportProcessed(ctx, caller, payment)
	return payment, nil
}

// report lands the register snapshot and lifecycle event on the reporting
// boundary after the aggregate mutation has committed. Failures are
// logged, not returned - the reporting layer is a read model.
func (rm *registerManager) report(ctx context.Context, register *paytypes.Register, eventType paytypes.EventType, info paytypes.JSONObject) {
	rm.snapshots.Set(register.Address.String(), register, cache.DefaultExpiration)
	if err := rm.database.UpsertRegister(ctx, register); err != nil {
		log.L(ctx).Errorf("Failed to snapshot register %s: %s", register.Address, err)
	}
	if err := rm.events.EmitEvent(ctx, paytypes.NewEvent(eventType, register.Address, info)); err != nil {
		log.L(ctx).Errorf("Failed to emit %s event for register %s: %s", eventType, register.Address, err)
	}
}

func (rm *registerManager) reportProcessed(ctx context.Context, caller paytypes.Identity, payment *paytypes.Payment) {
	event := paytypes.NewEvent(paytypes.EventTypePaymentProcessed, payment.ID, paytypes.JSONObject{
		"correlationId": payment.CorrelationID,
	})
	if err := rm.events.EmitEvent(ctx, event); err != nil {
		log.L(ctx).Errorf("Failed to emit %s event for payment %s: %s", event.Type, payment.ID, err)
	}
	if err := rm.database.UpsertPayment(ctx, &paytypes.PaymentView{
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
