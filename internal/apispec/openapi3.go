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

package apispec

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/kaleido-io/payreg/internal/config"
)

// SwaggerGen builds the OpenAPI document for a set of routes, so the API
// documentation stays in-line with the route descriptors themselves
func SwaggerGen(ctx context.Context, routes []*Route) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.2",
		Servers: openapi3.Servers{
			{URL: fmt.Sprintf("http://%s:%d/api/v1", config.GetString(config.HTTPAddress), config.GetUint(config.HTTPPort))},
		},
		Info: &openapi3.Info{
			Title:       "Payreg",
			Version:     "1.0",
			Description: "Copyright © 2022 Kaleido, Inc.",
		},
	}
	for _, route := range routes {
		addRoute(ctx, doc, route)
	}
	return doc
}

func getPathItem(doc *openapi3.T, path string) *openapi3.PathItem {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if doc.Paths == nil {
		doc.Paths = openapi3.Paths{}
	}
	pi, ok := doc.Paths[path]
	if ok {
		return pi
	}
	pi = &openapi3.PathItem{}
	doc.Paths[path] = pi
	return pi
}

func addInput(input interface{}, op *openapi3.Operation) {
	schemaRef, _, _ := openapi3gen.NewSchemaRefForValue(input)
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: schemaRef,
				},
			},
		},
	}
}

func addOutput(route *Route, output interface{}, op *openapi3.Operation) {
	schemaRef, _, _ := openapi3gen.NewSchemaRefForValue(output)
	s := "Success"
	op.Responses[strconv.FormatInt(int64(route.JSONOutputCode), 10)] = &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &s,
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: schemaRef,
				},
			},
		},
	}
}

func addParam(op *openapi3.Operation, in, name, description string) {
	op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
		Value: &openapi3.Parameter{
			In:          in,
			Name:        name,
			Required:    in == "path",
			Description: description,
			Schema: &openapi3.SchemaRef{
				Value: &openapi3.Schema{
					Type: "string",
				},
			},
		},
	})
}

func addRoute(ctx context.Context, doc *openapi3.T, route *Route) {
	pi := getPathItem(doc, route.Path)
	op := &openapi3.Operation{
		Description: route.Description,
		OperationID: route.Name,
		Responses:   openapi3.NewResponses(),
	}
	if route.JSONInputValue != nil {
		if input := route.JSONInputValue(); input != nil {
			addInput(input, op)
		}
	}
	if route.JSONOutputValue != nil {
		if output := route.JSONOutputValue(); output != nil {
			addOutput(route, output, op)
		}
	}
	for _, p := range route.PathParams {
		addParam(op, "path", p.Name, p.Description)
	}
	for _, q := range route.QueryParams {
		addParam(op, "query", q.Name, q.Description)
	}
	switch route.Method {
	case http.MethodGet:
		pi.Get = op
	case http.MethodPut:
		pi.Put = op
	case http.MethodPost:
		pi.Post = op
	case http.MethodDelete:
		pi.Delete = op
	}
}
