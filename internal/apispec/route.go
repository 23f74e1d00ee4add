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

// Package apispec holds the declarative route descriptors for the REST API,
// one route per file in the apiserver package, decoupled from the HTTP
// plumbing that serves them.
package apispec

import (
	"context"
	"net/http"

	"github.com/kaleido-io/payreg/internal/orchestrator"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// PathParam is a named positional parameter within a route path
type PathParam struct {
	Name        string
	Description string
}

// QueryParam is an optional query string parameter on a route
type QueryParam struct {
	Name        string
	Example     string
	Description string
}

// Route defines a REST API route, and the handler that serves it
type Route struct {
	// Name is the unique name of this route, used in trace logging
	Name string
	// Path is a URL path fragment, relative to the API version root, in
	// gorilla/mux syntax
	Path string
	// Method is the HTTP method
	Method string
	// PathParams are the parameters embedded in Path
	PathParams []*PathParam
	// QueryParams are the supported query string parameters
	QueryParams []*QueryParam
	// Description is a short human readable description of the route
	Description string
	// CallerRequired routes reject requests without a caller identity header
	CallerRequired bool
	// JSONInputValue builds a new empty instance of the request body, or
	// nil for routes without one
	JSONInputValue func() interface{}
	// JSONOutputValue builds a new empty instance of the response body,
	// for documentation purposes
	JSONOutputValue func() interface{}
	// JSONOutputCode is the HTTP status code of a successful response
	JSONOutputCode int
	// JSONHandler performs the operation for the route
	JSONHandler func(r *APIRequest) (output interface{}, err error)
}

// APIRequest is the parsed and authenticated form of a single inbound
// request, as passed to a route's JSONHandler
type APIRequest struct {
	Ctx           context.Context
	Or            orchestrator.Orchestrator
	Req           *http.Request
	PP            map[string]string
	QP            map[string]string
	Caller        paytypes.Identity
	Input         interface{}
	SuccessStatus int
}
