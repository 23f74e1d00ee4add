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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"github.com/kaleido-io/payreg/internal/apispec"
	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/events/eifactory"
	"github.com/kaleido-io/payreg/internal/events/websockets"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/orchestrator"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/rs/cors"
)

// CallerIdentityHeader carries the authenticated identity of the submitting
// party, set by the trusted ingress in front of this node
const CallerIdentityHeader = "x-payreg-identity"

var prCodeExtractor = regexp.MustCompile(`^(PR\d+):`)

// RESTError is the JSON body returned on any failed request
type RESTError struct {
	Error string `json:"error"`
}

// Server is the HTTP boundary of the node
type Server interface {
	Serve(ctx context.Context, o orchestrator.Orchestrator) error
}

type apiServer struct{}

func NewAPIServer() Server {
	return &apiServer{}
}

func (as *apiServer) Serve(ctx context.Context, o orchestrator.Orchestrator) error {
	hs, err := newHTTPServer(ctx, as.createMuxRouter(ctx, o))
	if err != nil {
		return err
	}
	go hs.serveHTTP(ctx)
	select {
	case err = <-hs.onClose:
		return err
	case <-ctx.Done():
		return <-hs.onClose
	}
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), config.GetDuration(config.APIRequestTimeout))
		defer cancel()
		httpReqID := paytypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)

		startTime := time.Now()
		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		status, err := handler(res, req)
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err != nil {
			// A timeout on the request context beats whatever error
			// surfaced from the aborted operation
			if ctx.Err() != nil {
				err = i18n.NewError(ctx, i18n.MsgRequestTimeout, httpReqID, durationMS)
				status = http.StatusRequestTimeout
			} else if match := prCodeExtractor.FindStringSubmatch(err.Error()); len(match) > 1 {
				if hint, ok := i18n.GetStatusHint(match[1]); ok {
					status = hint
				}
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			res.Header().Add("Content-Type", "application/json")
			res.WriteHeader(status)
			_ = json.NewEncoder(res).Encode(&RESTError{Error: err.Error()})
			return
		}
		l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
	}
}

func (as *apiServer) routeHandler(o orchestrator.Orchestrator, route *apispec.Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {
		ctx := req.Context()

		caller := paytypes.Identity(req.Header.Get(CallerIdentityHeader))
		if route.CallerRequired && !caller.IsSpecified() {
			return http.StatusUnauthorized, i18n.NewError(ctx, i18n.MsgMissingCallerIdentity)
		}

		var input interface{}
		if route.JSONInputValue != nil {
			input = route.JSONInputValue()
			if err := json.NewDecoder(req.Body).Decode(input); err != nil {
				return http.StatusBadRequest, i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
			}
		}

		successStatus := route.JSONOutputCode
		if successStatus == 0 {
			successStatus = http.StatusOK
		}
		r := &apispec.APIRequest{
			Ctx:           ctx,
			Or:            o,
			Req:           req,
			PP:            mux.Vars(req),
			QP:            queryValues(req),
			Caller:        caller,
			Input:         input,
			SuccessStatus: successStatus,
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return http.StatusInternalServerError, err
		}
		return as.handleOutput(ctx, res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	vOutput := reflect.ValueOf(output)
	isNil := output == nil || (vOutput.Kind() == reflect.Ptr && vOutput.IsNil())
	if isNil {
		if status == http.StatusNoContent {
			res.WriteHeader(status)
			return status, nil
		}
		return http.StatusNotFound, i18n.NewError(ctx, i18n.Msg404NotFound)
	}
	res.Header().Add("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(output); err != nil {
		return http.StatusInternalServerError, i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
	}
	return status, nil
}

func queryValues(req *http.Request) map[string]string {
	qp := make(map[string]string)
	for name, values := range req.URL.Query() {
		if len(values) > 0 {
			qp[name] = values[len(values)-1]
		}
	}
	return qp
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	res.Header().Add("Content-Type", "application/json")
	return http.StatusNotFound, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) createMuxRouter(ctx context.Context, o orchestrator.Orchestrator) http.Handler {
	r := mux.NewRouter()
	for _, route := range routes {
		if route.JSONHandler != nil {
			r.HandleFunc(fmt.Sprintf("/api/v1/%s", route.Path), as.routeHandler(o, route)).Methods(route.Method)
		}
	}
	r.HandleFunc("/api/swagger.json", as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {
		return as.handleOutput(req.Context(), res, http.StatusOK, apispec.SwaggerGen(req.Context(), routes))
	})).Methods(http.MethodGet)
	if ws, err := eifactory.GetPlugin(ctx, "websockets"); err == nil {
		r.HandleFunc("/ws", ws.(*websockets.WebSockets).ServeHTTP)
	}
	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return wrapCorsIfEnabled(r)
}

func wrapCorsIfEnabled(chain http.Handler) http.Handler {
	if !config.GetBool(config.CorsEnabled) {
		return chain
	}
	return cors.New(cors.Options{
		AllowedOrigins:   config.GetStringSlice(config.CorsAllowedOrigins),
		AllowedMethods:   config.GetStringSlice(config.CorsAllowedMethods),
		AllowedHeaders:   config.GetStringSlice(config.CorsAllowedHeaders),
		AllowCredentials: config.GetBool(config.CorsAllowCredentials),
		MaxAge:           config.GetInt(config.CorsMaxAge),
	}).Handler(chain)
}
