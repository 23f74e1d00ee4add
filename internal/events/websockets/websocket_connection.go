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
	"encoding/json"
	"io/ioutil"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

type websocketConnection struct {
	ctx          context.Context
	ws           *WebSockets
	wsConn       *websocket.Conn
	cancelCtx    func()
	connID       string
	sendMessages chan interface{}
	closeMux     sync.Mutex
	closed       bool
}

func newConnection(pCtx context.Context, ws *WebSockets, wsConn *websocket.Conn) *websocketConnection {
	connID := paytypes.ShortID()
	ctx := log.WithLogField(pCtx, "websocket", connID)
	ctx, cancelCtx := context.WithCancel(ctx)
	wc := &websocketConnection{
		ctx:          ctx,
		ws:           ws,
		wsConn:       wsConn,
		cancelCtx:    cancelCtx,
		connID:       connID,
		sendMessages: make(chan interface{}, 1),
	}
	go wc.sendLoop()
	go wc.receiveLoop()
	return wc
}

func (wc *websocketConnection) send(msg interface{}, timeout time.Duration) error {
	select {
	case wc.sendMessages <- msg:
		return nil
	case <-time.After(timeout):
		return i18n.NewError(wc.ctx, i18n.MsgWSSendTimedOut)
	case <-wc.ctx.Done():
		return i18n.NewError(wc.ctx, i18n.MsgContextCanceled)
	}
}

func (wc *websocketConnection) sendLoop() {
	l := log.L(wc.ctx)
	defer wc.close()
	for {
		select {
		case msg := <-wc.sendMessages:
			l.Tracef("Sending: %+v", msg)
			writer, err := wc.wsConn.NextWriter(websocket.TextMessage)
			if err == nil {
				err = json.NewEncoder(writer).Encode(msg)
				_ = writer.Close()
			}
			if err != nil {
				l.Errorf("Write failed on socket: %s", err)
				return
			}
		case <-wc.ctx.Done():
			l.Debugf("Sender closing - context cancelled")
			return
		}
	}
}

// receiveLoop drains inbound frames. This transport has no client protocol -
// anything the client sends is either an error report, which gets logged,
// or noise
func (wc *websocketConnection) receiveLoop() {
	l := log.L(wc.ctx)
	defer wc.close()
	for {
		_, reader, err := wc.wsConn.NextReader()
		if err != nil {
			l.Debugf("Read failed: %s", err)
			return
		}
		msgData, err := ioutil.ReadAll(reader)
		if err != nil {
			l.Debugf("Read failed: %s", err)
			return
		}
		var msg struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(msgData, &msg); err == nil && msg.Type == "error" {
			l.Errorf("%s", i18n.NewError(wc.ctx, i18n.MsgWebsocketClientError, msg.Message))
			continue
		}
		l.Tracef("Received (ignored): %s", string(msgData))
	}
}

func (wc *websocketConnection) close() {
	wc.closeMux.Lock()
	alreadyClosed := wc.closed
	wc.closed = true
	wc.closeMux.Unlock()
	if alreadyClosed {
		return
	}
	wc.cancelCtx()
	_ = wc.wsConn.Close()
	wc.ws.connClosed(wc.connID)
	log.L(wc.ctx).Infof("Disconnected")
}
