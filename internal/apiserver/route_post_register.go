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

var postRegister = &apispec.Route{
	Name:           "postRegister",
	Path:           "registers",
	Method:         http.MethodPost,
	Description:    "Creates a register, controlled by the caller, with a new stable address",
	CallerRequired: true,
	JSONInputValue: nil,
	JSONOutputValue: func() interface{} {
		return &paytypes.Register{}
	},
	JSONOutputCode: http.StatusCreated,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		return r.Or.Registers().CreateRegister(r.Ctx, r.Caller)
	},
}
