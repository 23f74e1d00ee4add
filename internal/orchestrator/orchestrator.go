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

package orchestrator

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/database/difactory"
	"github.com/kaleido-io/payreg/internal/earmarks"
	"github.com/kaleido-io/payreg/internal/events"
	"github.com/kaleido-io/payreg/internal/events/eifactory"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/registers"
	"github.com/kaleido-io/payreg/internal/substrate/ssfactory"
	"github.com/kaleido-io/payreg/internal/transfers"
	"github.com/kaleido-io/payreg/pkg/database"
	eventspkg "github.com/kaleido-io/payreg/pkg/events"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/kaleido-io/payreg/pkg/substrate"
)

var (
	databasePrefix    = config.NewPluginConfig("database")
	objectStorePrefix = config.NewPluginConfig("objectstore")
	eventsPrefix      = config.NewPluginConfig("events")
)

// Orchestrator is the main interface behind the API, performing the heavy
// lifting of wiring config to plugins to managers
type Orchestrator interface {
	Init(ctx context.Context) error
	Start() error
	WaitStop()

	Transfers() transfers.Manager
	Registers() registers.Manager
	Earmarks() earmarks.Manager

	GetEventByID(ctx context.Context, id *paytypes.UUID) (*paytypes.Event, error)
	GetEvents(ctx context.Context, afterSequence int64, limit int) ([]*paytypes.Event, error)
	GetStatus(ctx context.Context) (*paytypes.NodeStatus, error)
}

type orchestrator struct {
	ctx         context.Context
	database    database.Plugin
	objectStore substrate.Plugin
	transports  []eventspkg.Plugin
	events      events.EventManager
	transfers   transfers.Manager
	registers   registers.Manager
	earmarks    earmarks.Manager
}

func InitConfigPrefixes() {
	difactory.InitPrefix(databasePrefix)
	ssfactory.InitPrefix(objectStorePrefix)
	eifactory.InitPrefix(eventsPrefix)
}

func NewOrchestrator() Orchestrator {
	return &orchestrator{}
}

func (or *orchestrator) Init(ctx context.Context) (err error) {
	or.ctx = ctx
	if err = or.initPlugins(ctx); err != nil {
		return err
	}
	if or.events == nil {
		or.events = events.NewEventManager(ctx, or.database, or.transports)
	}
	for _, transport := range or.transports {
		prefix := eventsPrefix.SubPrefix(transport.Name())
		if err = transport.Init(ctx, prefix, or.events); err != nil {
			return err
		}
	}
	if or.earmarks == nil {
		or.earmarks = earmarks.NewEarmarkManager(ctx, or.objectStore, or.database, or.events)
	}
	if or.transfers == nil {
		or.transfers = transfers.NewTransferManager(ctx, or.objectStore, or.database, or.events, or.earmarks)
	}
	if or.registers == nil {
		or.registers = registers.NewRegisterManager(ctx, or.objectStore, or.database, or.events, nil)
	}
	return nil
}

// Plugins already set are left alone, which is how the tests inject mocks
func (or *orchestrator) initPlugins(ctx context.Context) (err error) {
	if or.database == nil {
		databaseType := config.GetString(config.DatabaseType)
		if or.database, err = difactory.GetPlugin(ctx, databaseType); err != nil {
			return err
		}
		if err = or.database.Init(ctx, databasePrefix.SubPrefix(databaseType), or); err != nil {
			return err
		}
	}

	if or.objectStore == nil {
		objectStoreType := config.GetString(config.ObjectStoreType)
		if or.objectStore, err = ssfactory.GetPlugin(ctx, objectStoreType); err != nil {
			return err
		}
		if err = or.objectStore.Init(ctx, objectStorePrefix.SubPrefix(objectStoreType), or); err != nil {
			return err
		}
	}

	if or.transports == nil {
		for _, transportName := range config.GetStringSlice(config.EventTransportsList) {
			transport, err := eifactory.GetPlugin(ctx, transportName)
			if err != nil {
				return err
			}
			or.transports = append(or.transports, transport)
		}
	}
	return nil
}

func (or *orchestrator) Start() error {
	or.events.Start()
	log.L(or.ctx).Infof("Orchestrator started")
	return nil
}

func (or *orchestrator) WaitStop() {
	or.events.WaitStop()
}

func (or *orchestrator) Transfers() transfers.Manager {
	return or.transfers
}

func (or *orchestrator) Registers() registers.Manager {
	return or.registers
}

func (or *orchestrator) Earmarks() earmarks.Manager {
	return or.earmarks
}

func (or *orchestrator) GetEventByID(ctx context.Context, id *paytypes.UUID) (*paytypes.Event, error) {
	return or.database.GetEventByID(ctx, id)
}

func (or *orchestrator) GetEvents(ctx context.Context, afterSequence int64, limit int) ([]*paytypes.Event, error) {
	if limit <= 0 {
		limit = config.GetInt(config.APIDefaultEventLimit)
	}
	if max := config.GetInt(config.APIMaxEventLimit); limit > max {
		limit = max
	}
	return or.database.GetEvents(ctx, afterSequence, limit)
}

func (or *orchestrator) GetStatus(ctx context.Context) (*paytypes.NodeStatus, error) {
	transports := make([]string, len(or.transports))
	for i, transport := range or.transports {
		transports[i] = transport.Name()
	}
	return &paytypes.NodeStatus{
		Node: config.GetString(config.NodeName),
		Database: paytypes.NodeStatusPlugin{
			Type: or.database.Name(),
		},
		ObjectStore: paytypes.NodeStatusObjectStore{
			Type:    or.objectStore.Name(),
			Durable: or.objectStore.Capabilities().Durable,
		},
		Transports: transports,
	}, nil
}

// EventCreated implements database.Callbacks: the reporting store notifies
// as event rows commit, in sequence order
func (or *orchestrator) EventCreated(sequence int64) {
	log.L(or.ctx).Tracef("Event sequence %d committed", sequence)
}

// OwnershipChanged implements substrate.Callbacks, surfacing the store's
// ownership log for reconciliation tooling
func (or *orchestrator) OwnershipChanged(change *paytypes.OwnershipChange) {
	log.L(or.ctx).Debugf("Ownership of %s moved %s -> %s (sequence=%d)", change.ItemID, change.From, change.To, change.Sequence)
}
