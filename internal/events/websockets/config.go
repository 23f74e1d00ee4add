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

import "github.com/kaleido-io/payreg/internal/config"

const (
	// ReadBufferSize is the WebSocket read buffer size
	ReadBufferSize = "readBufferSize"
	// WriteBufferSize is the WebSocket write buffer size
	WriteBufferSize = "writeBufferSize"
	// SendTimeout is the maximum time to block delivering an event to a client
	SendTimeout = "sendTimeout"
)

const (
	defaultBufferSize  = "16Kb"
	defaultSendTimeout = "5s"
)

func (ws *WebSockets) InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(ReadBufferSize, defaultBufferSize)
	prefix.AddKnownKey(WriteBufferSize, defaultBufferSize)
	prefix.AddKnownKey(SendTimeout, defaultSendTimeout)
}
