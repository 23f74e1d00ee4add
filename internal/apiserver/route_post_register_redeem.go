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
	"net/http"

	"github.com/kaleido-io/payreg/internal/apispec"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

type postRegisterRedeemInput struct {
	ItemID *paytypes.UUID `json:"itemId"`
}

var postRegisterRedeem = &apispec.Route{
	Name:   "postRegisterRedeem",
	Path:   "registers/{addr}/redeem",
	Method: http.MethodPost,
	PathParams: []*apispec.PathParam{
		{Name: "addr", Description: "The address of the register"},
	},
	Description:    "Redeems a payment anchored at the register, subject to its authorization policy",
	CallerRequired: true,
	JSONInputValue: func() interface{} {
		return &postRegisterRedeemInput{}
	},
	JSONOutputValue: func() interface{} {
		return &paytypes.Payment{}
	},
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		addr, err := pathUUID(r.Ctx, r.PP, "addr")
		if err != nil {
			return nil, err
		}
		itemID, err := bodyUUID(r.Ctx, r.Input.(*postRegisterRedeemInput).ItemID)
		if err != nil {
			return nil, err
		}
		return r.Or.Registers().RedeemPayment(r.Ctx, r.Caller, addr, itemID)
	},
}
