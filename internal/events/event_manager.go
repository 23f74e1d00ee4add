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
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/retry"
	"github.com/kaleido-io/payreg/pkg/database"
	"github.com/kaleido-io/payreg/pkg/events"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// EventManager owns the committed event log. EmitEvent persists the event
// to the reporting database, assigning its total order, before any transport
// sees it. Fan-out to transports is asynchronous so a slow webhook or
// websocket consumer never blocks the operation that emitted the event.
type EventManager interface {
	events.Callbacks

	Start()
	EmitEvent(ctx context.Context, event *paytypes.Event) error
	WaitStop()
}

type eventManager struct {
	ctx            context.Context
	database       database.Plugin
	transports     []events.Plugin
	queue          chan *paytypes.Event
	retry          retry.Retry
	maxAttempts    int
	dispatcherDone chan struct{}
}

func NewEventManager(ctx context.Context, di database.Plugin, transports []events.Plugin) EventManager {
	em := &eventManager{
		ctx:        log.WithLogField(ctx, "role", "event-manager"),
		database:   di,
		transports: transports,
		queue:      make(chan *paytypes.Event, config.GetInt(config.EventQueueSize)),
		retry: retry.Retry{
			InitialDelay: config.GetDuration(config.EventRetryInitDelay),
			MaximumDelay: config.GetDuration(config.EventRetryMaxDelay),
		},
		maxAttempts:    config.GetInt(config.EventRetryMaxAttempts),
		dispatcherDone: make(chan struct{}),
	}
	return em
}

func (em *eventManager) Start() {
	go em.eventLoop()
}

// EmitEvent assigns the event its sequence by inserting it into the
// reporting database, then queues it for transport fan-out. The insert is
// the commit point - a transport failure after this never loses the event.
func (em *eventManager) EmitEvent(ctx context.Context, event *paytypes.Event) error {
	if err := em.database.InsertEvent(ctx, event); err != nil {
		return err
	}
	log.L(ctx).Infof("Emitted %s event %s (sequence=%d)", event.Type, event.ID, event.Sequence)
	select {
	case em.queue <- event:
	case <-em.ctx.Done():
		return i18n.NewError(em.ctx, i18n.MsgContextCanceled)
	}
	return nil
}

func (em *eventManager) eventLoop() {
	defer close(em.dispatcherDone)
	l := log.L(em.ctx)
	for {
		select {
		case event := <-em.queue:
			em.dispatch(event)
		case <-em.ctx.Done():
			l.Debugf("Event loop exiting")
			return
		}
	}
}

func (em *eventManager) dispatch(event *paytypes.Event) {
	for _, transport := range em.transports {
		err := em.retry.Do(em.ctx, func(attempt int) (bool, error) {
			err := transport.DeliveryRequest(em.ctx, event)
			if err != nil {
				log.L(em.ctx).Warnf("Delivery attempt %d failed on transport '%s' for event %s: %s", attempt, transport.Name(), event.ID, err)
			}
			return err != nil && attempt < em.maxAttempts, err
		})
		if err != nil {
			// The event stays committed and queryable - only this transport missed it
			log.L(em.ctx).Errorf("Gave up delivering event %s on transport '%s': %s", event.ID, transport.Name(), err)
		}
	}
}

// ConnectionClosed implements events.Callbacks for all transports
func (em *eventManager) ConnectionClosed(connID string) {
	log.L(em.ctx).Debugf("Connection '%s' closed", connID)
}

func (em *eventManager) WaitStop() {
	<-em.dispatcherDone
}
