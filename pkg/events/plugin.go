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

package events

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// Plugin is the interface implemented by each event delivery transport.
// Transports stream the committed event sequence out to applications -
// WebSockets, Webhooks etc. Delivery is at-least-once on the transport
// boundary; the core never blocks on a slow consumer.
type Plugin interface {
	paytypes.Named

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Capabilities returns capabilities - not called until after Init
	Capabilities() *Capabilities

	// DeliveryRequest requests delivery of an event on this transport.
	// An error returned here is a transport delivery failure - the event
	// remains committed and queryable regardless
	DeliveryRequest(ctx context.Context, event *paytypes.Event) error
}

// Callbacks is the interface provided to each transport plugin
type Callbacks interface {
	// ConnectionClosed is a notification that a client connection has gone away
	ConnectionClosed(connID string)
}

// Capabilities defines the capabilities a plugin can report as implementing or not
type Capabilities struct {
	// Broadcast is set if the transport delivers each event to all connected consumers,
	// rather than to a single configured destination
	Broadcast bool
}
