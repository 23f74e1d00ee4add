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

var getRegisters = &apispec.Route{
	Name:   "getRegisters",
	Path:   "registers",
	Method: http.MethodGet,
	QueryParams: []*apispec.QueryParam{
		{Name: "limit", Example: "25", Description: "Maximum number of registers to return"},
		{Name: "skip", Example: "0", Description: "Number of registers to skip"},
	},
	Description: "Lists register display snapshots",
	JSONOutputValue: func() interface{} {
		return []*paytypes.Register{}
	},
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		return r.Or.Registers().GetRegisters(r.Ctx, intQuery(r.QP, "limit", 0), intQuery(r.QP, "skip", 0))
	},
}
