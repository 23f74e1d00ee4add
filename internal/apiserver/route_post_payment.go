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

type postPaymentInput struct {
	CorrelationID uint64           `json:"correlationId"`
	Amount        *paytypes.Amount `json:"amount"`
}

var postPayment = &apispec.Route{
	Name:           "postPayment",
	Path:           "payments",
	Method:         http.MethodPost,
	Description:    "Mints a new payment record owned by the caller",
	CallerRequired: true,
	JSONInputValue: func() interface{} {
		return &postPaymentInput{}
	},
	JSONOutputValue: func() interface{} {
		return &paytypes.Payment{}
	},
	JSONOutputCode: http.StatusCreated,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		input := r.Input.(*postPaymentInput)
		return r.Or.Transfers().CreatePayment(r.Ctx, r.Caller, input.CorrelationID, input.Amount)
	},
}
