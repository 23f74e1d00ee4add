// Copyright © 2021 Kaleido, Inc.
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

package websockets

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/events"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// WebSockets is an ephemeral streaming transport. Every event committed to
// the log is broadcast to all connected clients. There is no durable cursor
// on a connection - clients that need replay query the events API with
// their last sequence.
type WebSockets struct {
	ctx          context.Context
	capabilities *events.Capabilities
	callbacks    events.Callbacks
	connections  map[string]*websocketConnection
	connMux      sync.Mutex
	upgrader     websocket.Upgrader
	sendTimeout  time.Duration
}

func (ws *WebSockets) Name() string { return "websockets" }

func (ws *WebSockets) Init(ctx context.Context, prefix config.Prefix, callbacks events.Callbacks) error {
	*ws = WebSockets{
		ctx:          ctx,
		connections:  make(map[string]*websocketConnection),
		capabilities: &events.Capabilities{Broadcast: true},
		callbacks:    callbacks,
		sendTimeout:  prefix.GetDuration(SendTimeout),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  int(prefix.GetByteSize(ReadBufferSize)),
			WriteBufferSize: int(prefix.GetByteSize(WriteBufferSize)),
			CheckOrigin: func(r *http.Request) bool {
				// Cors is handled by the API server that wraps this handler
				return true
			},
		},
	}
	return nil
}

func (ws *WebSockets) Capabilities() *events.Capabilities {
	return ws.capabilities
}

func (ws *WebSockets) DeliveryRequest(ctx context.Context, event *paytypes.Event) error {
	ws.connMux.Lock()
	conns := make([]*websocketConnection, 0, len(ws.connections))
	for _, wc := range ws.connections {
		conns = append(conns, wc)
	}
	ws.connMux.Unlock()

	for _, wc := range conns {
		if err := wc.send(event, ws.sendTimeout); err != nil {
			// A slow client does not hold up the stream for anybody else
			log.L(ctx).Errorf("Disconnecting stalled websocket %s: %s", wc.connID, err)
			wc.close()
		}
	}
	return nil
}

func (ws *WebSockets) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	wsConn, err := ws.upgrader.Upgrade(res, req, nil)
	if err != nil {
		log.L(ws.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}

	ws.connMux.Lock()
	wc := newConnection(ws.ctx, ws, wsConn)
	ws.connections[wc.connID] = wc
	ws.connMux.Unlock()
}

func (ws *WebSockets) connClosed(connID string) {
	ws.connMux.Lock()
	delete(ws.connections, connID)
	ws.connMux.Unlock()
	// Drop lock before calling back
	if ws.callbacks != nil {
		ws.callbacks.ConnectionClosed(connID)
	}
}
