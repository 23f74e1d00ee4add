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

var getRegisterPending = &apispec.Route{
	Name:   "getRegisterPending",
	Path:   "registers/{addr}/pending",
	Method: http.MethodGet,
	PathParams: []*apispec.PathParam{
		{Name: "addr", Description: "The address of the register"},
	},
	Description: "Lists the tickets for items currently anchored at the register, in creation order",
	JSONOutputValue: func() interface{} {
		return []*paytypes.Ticket{}
	},
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		addr, err := pathUUID(r.Ctx, r.PP, "addr")
		if err != nil {
			return nil, err
		}
		return r.Or.Registers().ListPending(r.Ctx, addr)
	},
}
