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

package eifactory

import (
	"context"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/events/webhooks"
	"github.com/kaleido-io/payreg/internal/events/websockets"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/pkg/events"
)

var plugins = []events.Plugin{
	&websockets.WebSockets{},
	&webhooks.WebHooks{},
}

func InitPrefix(prefix config.Prefix) {
	for _, plugin := range plugins {
		plugin.InitPrefix(prefix.SubPrefix(plugin.Name()))
	}
}

func GetPlugin(ctx context.Context, pluginType string) (events.Plugin, error) {
	for _, plugin := range plugins {
		if plugin.Name() == pluginType {
			return plugin, nil
		}
	}
	return nil, i18n.NewError(ctx, i18n.MsgUnknownEventTransport, pluginType)
}
