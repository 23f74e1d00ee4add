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

package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/mocks/earmarksmocks"
	"github.com/kaleido-io/payreg/mocks/orchestratormocks"
	"github.com/kaleido-io/payreg/mocks/registersmocks"
	"github.com/kaleido-io/payreg/mocks/transfersmocks"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAPIServer() (*orchestratormocks.Orchestrator, http.Handler) {
	config.Reset()
	mor := &orchestratormocks.Orchestrator{}
	as := &apiServer{}
	return mor, as.createMuxRouter(context.Background(), mor)
}

func jsonReq(method, path string, caller string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(CallerIdentityHeader, caller)
	}
	return req
}

func TestPostPayment(t *testing.T) {
	mor, r := newTestAPIServer()
	mtm := &transfersmocks.Manager{}
	mor.On("Transfers").Return(mtm)
	payment := &paytypes.Payment{
		ID:            paytypes.NewUUID(),
		CorrelationID: 42,
		Amount:        paytypes.NewAmount(10),
		Payer:         "acct-alice",
	}
	mtm.On("CreatePayment", mock.Anything, paytypes.Identity("acct-alice"), uint64(42), mock.Anything).Return(payment, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/payments", "acct-alice", map[string]interface{}{
		"correlationId": 42,
		"amount":        10,
	}))

	assert.Equal(t, 201, res.Code)
	var got paytypes.Payment
	err := json.Unmarshal(res.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)
	mtm.AssertExpectations(t)
}

func TestPostPaymentMissingCaller(t *testing.T) {
	_, r := newTestAPIServer()
	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/payments", "", map[string]interface{}{
		"correlationId": 42,
		"amount":        10,
	}))
	assert.Equal(t, 401, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10134", restErr.Error)
}

func TestPostPaymentBadJSON(t *testing.T) {
	_, r := newTestAPIServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader([]byte("!json")))
	req.Header.Set(CallerIdentityHeader, "acct-alice")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	assert.Equal(t, 400, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10102", restErr.Error)
}

func TestPostEarmark(t *testing.T) {
	mor, r := newTestAPIServer()
	mtm := &transfersmocks.Manager{}
	mor.On("Transfers").Return(mtm)
	earmark := &paytypes.Earmark{ID: paytypes.NewUUID(), Recipient: "acct-bob"}
	mtm.On("CreateEarmarkedPayment", mock.Anything, paytypes.Identity("acct-alice"), uint64(42), mock.Anything, paytypes.Identity("acct-bob")).Return(earmark, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/earmarks", "acct-alice", map[string]interface{}{
		"correlationId": 42,
		"amount":        10,
		"recipient":     "acct-bob",
	}))

	assert.Equal(t, 201, res.Code)
	mtm.AssertExpectations(t)
}

func TestPostTransfer(t *testing.T) {
	mor, r := newTestAPIServer()
	mtm := &transfersmocks.Manager{}
	mor.On("Transfers").Return(mtm)
	itemID := paytypes.NewUUID()
	transfer := &paytypes.TransferEvent{ItemID: itemID, From: "acct-alice", To: "acct-bob"}
	mtm.On("Transfer", mock.Anything, paytypes.Identity("acct-alice"), itemID, paytypes.Identity("acct-bob")).Return(transfer, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/transfers", "acct-alice", map[string]interface{}{
		"itemId": itemID.String(),
		"to":     "acct-bob",
	}))

	assert.Equal(t, 200, res.Code)
	mtm.AssertExpectations(t)
}

func TestPostTransferMissingItemID(t *testing.T) {
	_, r := newTestAPIServer()
	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/transfers", "acct-alice", map[string]interface{}{
		"to": "acct-bob",
	}))
	assert.Equal(t, 400, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10104", restErr.Error)
}

func TestPostTransferNotOwnerConflict(t *testing.T) {
	mor, r := newTestAPIServer()
	mtm := &transfersmocks.Manager{}
	mor.On("Transfers").Return(mtm)
	itemID := paytypes.NewUUID()
	mtm.On("Transfer", mock.Anything, paytypes.Identity("acct-mallory"), itemID, paytypes.Identity("acct-bob")).
		Return(nil, i18n.NewError(context.Background(), i18n.MsgOwnershipViolation, "acct-mallory", itemID))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/transfers", "acct-mallory", map[string]interface{}{
		"itemId": itemID.String(),
		"to":     "acct-bob",
	}))

	assert.Equal(t, 409, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10123", restErr.Error)
}

func TestPostRegister(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	register := &paytypes.Register{Address: paytypes.NewUUID(), Controller: "acct-carol"}
	mrm.On("CreateRegister", mock.Anything, paytypes.Identity("acct-carol")).Return(register, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, "/api/v1/registers", "acct-carol", nil))

	assert.Equal(t, 201, res.Code)
	var got paytypes.Register
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Equal(t, register.Address, got.Address)
	mrm.AssertExpectations(t)
}

func TestGetRegisterNotFound(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	mrm.On("GetRegister", mock.Anything, addr).
		Return(nil, i18n.NewError(context.Background(), i18n.MsgRegisterNotFound, addr))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, fmt.Sprintf("/api/v1/registers/%s", addr), "", nil))

	assert.Equal(t, 404, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10127", restErr.Error)
}

func TestGetRegisterBadUUID(t *testing.T) {
	_, r := newTestAPIServer()
	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/v1/registers/!wrong", "", nil))
	assert.Equal(t, 400, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10104", restErr.Error)
}

func TestGetRegistersQueryParams(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	mrm.On("GetRegisters", mock.Anything, 5, 10).Return([]*paytypes.Register{}, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/v1/registers?limit=5&skip=10", "", nil))

	assert.Equal(t, 200, res.Code)
	mrm.AssertExpectations(t)
}

func TestPutRegisterController(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	register := &paytypes.Register{Address: addr, Controller: "acct-carol2"}
	mrm.On("ReassignController", mock.Anything, paytypes.Identity("acct-carol"), addr, paytypes.Identity("acct-carol2")).Return(register, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPut, fmt.Sprintf("/api/v1/registers/%s/controller", addr), "acct-carol", map[string]interface{}{
		"controller": "acct-carol2",
	}))

	assert.Equal(t, 200, res.Code)
	mrm.AssertExpectations(t)
}

func TestPostRegisterPrincipal(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	register := &paytypes.Register{Address: addr, Controller: "acct-carol", AuthorizedPrincipals: []paytypes.Identity{"acct-eve"}}
	mrm.On("AddPrincipal", mock.Anything, paytypes.Identity("acct-carol"), addr, paytypes.Identity("acct-eve")).Return(register, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, fmt.Sprintf("/api/v1/registers/%s/principals", addr), "acct-carol", map[string]interface{}{
		"principal": "acct-eve",
	}))

	assert.Equal(t, 201, res.Code)
	mrm.AssertExpectations(t)
}

func TestDeleteRegisterPrincipal(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	register := &paytypes.Register{Address: addr, Controller: "acct-carol"}
	mrm.On("RemovePrincipal", mock.Anything, paytypes.Identity("acct-carol"), addr, paytypes.Identity("acct-eve")).Return(register, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodDelete, fmt.Sprintf("/api/v1/registers/%s/principals/acct-eve", addr), "acct-carol", nil))

	assert.Equal(t, 200, res.Code)
	mrm.AssertExpectations(t)
}

func TestGetRegisterPending(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	tickets := []*paytypes.Ticket{
		{Address: addr, ItemID: paytypes.NewUUID(), Class: paytypes.CapabilityClassOpen, CorrelationID: 42, Amount: paytypes.NewAmount(10)},
	}
	mrm.On("ListPending", mock.Anything, addr).Return(tickets, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, fmt.Sprintf("/api/v1/registers/%s/pending", addr), "", nil))

	assert.Equal(t, 200, res.Code)
	var got []*paytypes.Ticket
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	mrm.AssertExpectations(t)
}

func TestPostRegisterRedeem(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	itemID := paytypes.NewUUID()
	payment := &paytypes.Payment{ID: itemID, CorrelationID: 42, Amount: paytypes.NewAmount(10), Payer: "acct-alice"}
	mrm.On("RedeemPayment", mock.Anything, paytypes.Identity("acct-eve"), addr, itemID).Return(payment, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, fmt.Sprintf("/api/v1/registers/%s/redeem", addr), "acct-eve", map[string]interface{}{
		"itemId": itemID.String(),
	}))

	assert.Equal(t, 200, res.Code)
	mrm.AssertExpectations(t)
}

func TestPostRegisterRedeemAlreadyConsumed(t *testing.T) {
	mor, r := newTestAPIServer()
	mrm := &registersmocks.Manager{}
	mor.On("Registers").Return(mrm)
	addr := paytypes.NewUUID()
	itemID := paytypes.NewUUID()
	mrm.On("RedeemPayment", mock.Anything, paytypes.Identity("acct-eve"), addr, itemID).
		Return(nil, i18n.NewError(context.Background(), i18n.MsgAlreadyConsumed, itemID, addr))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, fmt.Sprintf("/api/v1/registers/%s/redeem", addr), "acct-eve", map[string]interface{}{
		"itemId": itemID.String(),
	}))

	assert.Equal(t, 409, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10124", restErr.Error)
}

func TestPostRegisterRedeemEarmarkNotRecipient(t *testing.T) {
	mor, r := newTestAPIServer()
	mem := &earmarksmocks.Manager{}
	mor.On("Earmarks").Return(mem)
	addr := paytypes.NewUUID()
	itemID := paytypes.NewUUID()
	mem.On("RedeemEarmark", mock.Anything, paytypes.Identity("acct-mallory"), addr, itemID).
		Return(nil, i18n.NewError(context.Background(), i18n.MsgNotAuthorized, "acct-mallory", addr))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodPost, fmt.Sprintf("/api/v1/registers/%s/redeemearmark", addr), "acct-mallory", map[string]interface{}{
		"itemId": itemID.String(),
	}))

	assert.Equal(t, 401, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10125", restErr.Error)
}

func TestGetEventsQueryParams(t *testing.T) {
	mor, r := newTestAPIServer()
	mor.On("GetEvents", mock.Anything, int64(100), 5).Return([]*paytypes.Event{}, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/v1/events?aftersequence=100&limit=5", "", nil))

	assert.Equal(t, 200, res.Code)
	mor.AssertExpectations(t)
}

func TestGetEventByIDNotFound(t *testing.T) {
	mor, r := newTestAPIServer()
	id := paytypes.NewUUID()
	mor.On("GetEventByID", mock.Anything, id).Return(nil, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, fmt.Sprintf("/api/v1/events/%s", id), "", nil))

	assert.Equal(t, 404, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10106", restErr.Error)
}

func TestGetStatus(t *testing.T) {
	mor, r := newTestAPIServer()
	mor.On("GetStatus", mock.Anything).Return(&paytypes.NodeStatus{Node: "payreg"}, nil)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/v1/status", "", nil))

	assert.Equal(t, 200, res.Code)
	var got paytypes.NodeStatus
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Equal(t, "payreg", got.Node)
}

func TestUnknownPath404(t *testing.T) {
	_, r := newTestAPIServer()
	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/wrong", "", nil))
	assert.Equal(t, 404, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Regexp(t, "PR10106", restErr.Error)
}

func TestGetSwaggerJSON(t *testing.T) {
	_, r := newTestAPIServer()
	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/swagger.json", "", nil))
	assert.Equal(t, 200, res.Code)
	var doc map[string]interface{}
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.2", doc["openapi"])
}

func TestUnmappedErrorIs500(t *testing.T) {
	mor, r := newTestAPIServer()
	mor.On("GetStatus", mock.Anything).Return(nil, fmt.Errorf("pop"))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, jsonReq(http.MethodGet, "/api/v1/status", "", nil))

	assert.Equal(t, 500, res.Code)
	var restErr RESTError
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &restErr))
	assert.Equal(t, "pop", restErr.Error)
}
