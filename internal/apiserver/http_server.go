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
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
)

type httpServer struct {
	listener net.Listener
	srv      *http.Server
	onClose  chan error
}

func newHTTPServer(ctx context.Context, handler http.Handler) (*httpServer, error) {
	listenAddr := fmt.Sprintf("%s:%d", config.GetString(config.HTTPAddress), config.GetUint(config.HTTPPort))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgAPIServerStartFailed, listenAddr, err)
	}
	log.L(ctx).Infof("API server listening on HTTP %s", listener.Addr())
	return &httpServer{
		listener: listener,
		onClose:  make(chan error),
		srv: &http.Server{
			Handler:      handler,
			ReadTimeout:  config.GetDuration(config.HTTPReadTimeout),
			WriteTimeout: config.GetDuration(config.HTTPWriteTimeout),
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		},
	}, nil
}

func (hs *httpServer) serveHTTP(ctx context.Context) {
	serverEnded := make(chan error)
	go func() {
		serverEnded <- hs.srv.Serve(hs.listener)
	}()
	select {
	case err := <-serverEnded:
		hs.onClose <- err
	case <-ctx.Done():
		log.L(ctx).Infof("API server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.srv.Shutdown(shutdownCtx)
		hs.onClose <- nil
	}
}
