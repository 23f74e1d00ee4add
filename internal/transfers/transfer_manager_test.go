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

package transfers

import (
	"context"
	"fmt"
	"testing"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/earmarks"
	"github.com/kaleido-io/payreg/internal/substrate/memstore"
	"github.com/kaleido-io/payreg/mocks/databasemocks"
	"github.com/kaleido-io/payreg/mocks/eventmocks"
	"github.com/kaleido-io/payreg/mocks/substratemocks"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type noopCallbacks struct{}

func (noopCallbacks) OwnershipChanged(change *paytypes.OwnershipChange) {}

func newTestTransferManager(t *testing.T) (Manager, substrate.Plugin, *databasemocks.Plugin, *eventmocks.EventManager) {
	config.Reset()
	ms := &memstore.MemStore{}
	prefix := config.NewPluginConfig("objectstore.memstore")
	ms.InitPrefix(prefix)
	err := ms.Init(context.Background(), prefix, noopCallbacks{})
	assert.NoError(t, err)
	mdi := &databasemocks.Plugin{}
	mem := &eventmocks.EventManager{}
	ek := earmarks.NewEarmarkManager(context.Background(), ms, mdi, mem)
	return NewTransferManager(context.Background(), ms, mdi, mem, ek), ms, mdi, mem
}

func TestCreatePayment(t *testing.T) {
	tm, ss, _, _ := newTestTransferManager(t)

	payment, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.NoError(t, err)
	assert.NotNil(t, payment.ID)
	assert.Equal(t, paytypes.Identity("acct-pat"), payment.Payer)

	obj, err := ss.GetObject(context.Background(), payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.ObjectKindPayment, obj.Kind)
	assert.Equal(t, paytypes.Identity("acct-pat"), obj.Owner)
}

func TestCreatePaymentBadAmount(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.CreatePayment(context.Background(), "acct-pat", 42, nil)
	assert.Regexp(t, "PR10132", err)
	_, err = tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(0))
	assert.Regexp(t, "PR10132", err)
	_, err = tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(-5))
	assert.Regexp(t, "PR10132", err)
}

func TestCreatePaymentNoCaller(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.CreatePayment(context.Background(), "", 42, paytypes.NewAmount(10))
	assert.Regexp(t, "PR10133", err)
}

func TestCreatePaymentStoreFail(t *testing.T) {
	config.Reset()
	mss := &substratemocks.Plugin{}
	mdi := &databasemocks.Plugin{}
	mem := &eventmocks.EventManager{}
	tm := NewTransferManager(context.Background(), mss, mdi, mem, earmarks.NewEarmarkManager(context.Background(), mss, mdi, mem))

	mss.On("CreateObject", mock.Anything, mock.Anything).Return(fmt.Errorf("pop"))
	_, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.EqualError(t, err, "pop")
}

func TestCreateEarmarkedPayment(t *testing.T) {
	tm, ss, _, _ := newTestTransferManager(t)

	wrapper, err := tm.CreateEarmarkedPayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10), "acct-tessa")
	assert.NoError(t, err)
	assert.Equal(t, paytypes.Identity("acct-tessa"), wrapper.Recipient)
	assert.Equal(t, uint64(42), wrapper.Payment.CorrelationID)

	// One stored object only - the payment lives inside the wrapper
	obj, err := ss.GetObject(context.Background(), wrapper.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.ObjectKindEarmark, obj.Kind)
	_, err = ss.GetObject(context.Background(), wrapper.Payment.ID)
	assert.Regexp(t, "PR10128", err)
}

func TestCreateEarmarkedPaymentNoRecipient(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.CreateEarmarkedPayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10), "")
	assert.Regexp(t, "PR10135", err)
}

func TestCreateEarmarkedPaymentBadAmount(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.CreateEarmarkedPayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(0), "acct-tessa")
	assert.Regexp(t, "PR10132", err)
}

func TestTransferPayment(t *testing.T) {
	tm, ss, mdi, mem := newTestTransferManager(t)

	payment, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.NoError(t, err)

	mem.On("EmitEvent", mock.Anything, mock.MatchedBy(func(event *paytypes.Event) bool {
		return event.Type == paytypes.EventTypePaymentSent && event.Reference.Equals(payment.ID)
	})).Return(nil)
	mdi.On("UpsertPayment", mock.Anything, mock.MatchedBy(func(view *paytypes.PaymentView) bool {
		return view.ID.Equals(payment.ID) && view.Status == paytypes.PaymentStatusSent && view.To == "acct-bob"
	})).Return(nil)

	transfer, err := tm.Transfer(context.Background(), "acct-pat", payment.ID, "acct-bob")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), transfer.CorrelationID)
	assert.Equal(t, int64(10), transfer.Amount.Int64())
	assert.Equal(t, paytypes.Identity("acct-pat"), transfer.From)
	assert.Equal(t, paytypes.Identity("acct-bob"), transfer.To)

	obj, err := ss.GetObject(context.Background(), payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.Identity("acct-bob"), obj.Owner)

	mdi.AssertExpectations(t)
	mem.AssertExpectations(t)
}

func TestTransferEarmark(t *testing.T) {
	tm, ss, mdi, mem := newTestTransferManager(t)

	wrapper, err := tm.CreateEarmarkedPayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10), "acct-tessa")
	assert.NoError(t, err)

	mem.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)
	mdi.On("UpsertPayment", mock.Anything, mock.MatchedBy(func(view *paytypes.PaymentView) bool {
		// The reporting row is keyed by the wrapped payment's identity
		return view.ID.Equals(wrapper.Payment.ID)
	})).Return(nil)

	transfer, err := tm.Transfer(context.Background(), "acct-pat", wrapper.ID, "acct-bob")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), transfer.CorrelationID)
	assert.True(t, transfer.ItemID.Equals(wrapper.ID))

	obj, err := ss.GetObject(context.Background(), wrapper.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.Identity("acct-bob"), obj.Owner)
	mdi.AssertExpectations(t)
}

func TestTransferNotOwner(t *testing.T) {
	tm, ss, _, _ := newTestTransferManager(t)

	payment, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.NoError(t, err)

	_, err = tm.Transfer(context.Background(), "acct-eve", payment.ID, "acct-eve")
	assert.Regexp(t, "PR10123", err)

	// No state change
	obj, err := ss.GetObject(context.Background(), payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.Identity("acct-pat"), obj.Owner)
	assert.Equal(t, int64(1), obj.Version)
}

func TestTransferOnwardFromAnchoredItemImpossible(t *testing.T) {
	tm, _, mdi, mem := newTestTransferManager(t)

	payment, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.NoError(t, err)

	addr := paytypes.NewUUID()
	mem.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)
	mdi.On("UpsertPayment", mock.Anything, mock.Anything).Return(nil)
	_, err = tm.Transfer(context.Background(), "acct-pat", payment.ID, addr.Identity())
	assert.NoError(t, err)

	// The old owner no longer passes the precondition, and nobody
	// authenticates as the address itself
	_, err = tm.Transfer(context.Background(), "acct-pat", payment.ID, "acct-eve")
	assert.Regexp(t, "PR10123", err)
}

func TestTransferRegisterObjectRejected(t *testing.T) {
	tm, ss, _, _ := newTestTransferManager(t)

	addr := paytypes.NewUUID()
	obj := &paytypes.StoredObject{ID: addr, Kind: paytypes.ObjectKindRegister, Owner: "acct-c0"}
	err := obj.SetData(&paytypes.Register{Address: addr, Controller: "acct-c0"})
	assert.NoError(t, err)
	err = ss.CreateObject(context.Background(), obj)
	assert.NoError(t, err)

	_, err = tm.Transfer(context.Background(), "acct-c0", addr, "acct-bob")
	assert.Regexp(t, "PR10131", err)
}

func TestTransferNoDestination(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.Transfer(context.Background(), "acct-pat", paytypes.NewUUID(), "")
	assert.Regexp(t, "PR10133", err)
}

func TestTransferItemNotFound(t *testing.T) {
	tm, _, _, _ := newTestTransferManager(t)
	_, err := tm.Transfer(context.Background(), "acct-pat", paytypes.NewUUID(), "acct-bob")
	assert.Regexp(t, "PR10128", err)
}

func TestTransferReportingFailuresDoNotFailTransfer(t *testing.T) {
	tm, ss, mdi, mem := newTestTransferManager(t)

	payment, err := tm.CreatePayment(context.Background(), "acct-pat", 42, paytypes.NewAmount(10))
	assert.NoError(t, err)

	mem.On("EmitEvent", mock.Anything, mock.Anything).Return(fmt.Errorf("pop"))
	mdi.On("UpsertPayment", mock.Anything, mock.Anything).Return(fmt.Errorf("pop"))

	// The ownership change is final once the store commits it
	transfer, err := tm.Transfer(context.Background(), "acct-pat", payment.ID, "acct-bob")
	assert.NoError(t, err)
	assert.NotNil(t, transfer)

	obj, err := ss.GetObject(context.Background(), payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, paytypes.Identity("acct-bob"), obj.Owner)
}
