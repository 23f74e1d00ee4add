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

var getEventByID = &apispec.Route{
	Name:   "getEventByID",
	Path:   "events/{eid}",
	Method: http.MethodGet,
	PathParams: []*apispec.PathParam{
		{Name: "eid", Description: "The UUID of the event"},
	},
	Description: "Gets an event by ID",
	JSONOutputValue: func() interface{} {
		return &paytypes.Event{}
	},
	JSONOutputCode: http.StatusOK,
	JSONHandler: func(r *apispec.APIRequest) (interface{}, error) {
		id, err := pathUUID(r.Ctx, r.PP, "eid")
		if err != nil {
			return nil, err
		}
		return r.Or.GetEventByID(r.Ctx, id)
	},
}
