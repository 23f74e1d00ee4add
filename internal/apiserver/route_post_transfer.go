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

type postTransferInput struct {
	ItemID *paytypes.UUID    `json:"itemId"`
	To     paytypes.Identity `json:"to"`
}

var postTransfer = &apispec.Route{
	Name:           "postTransfer",
	Path:           "transfers",
	Method:         http.MethodPost,
	Description:    "Transfers exclusive ownership of an item the caller owns, including to a register address",
	CallerRequired: true,
	JSONInputValue: func() interface{} {
		return &postTransferInput{}
	},
	JSONOutputValue: func() interface{} {
		return &paytypes.TransferEvent{}
	},
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		input := r.Input.(*postTransferInput)
		itemID, err := bodyUUID(r.Ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		return r.Or.Transfers().Transfer(r.Ctx, r.Caller, itemID, input.To)
	},
}
