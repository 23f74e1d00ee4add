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

package webhooks

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/restclient"
	"github.com/kaleido-io/payreg/pkg/events"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

// WebHooks posts each committed event to a statically configured list of
// HTTP endpoints. Retries happen on this delivery boundary only, via the
// REST client's backoff - a failed webhook never affects the committed
// event log.
type WebHooks struct {
	ctx          context.Context
	capabilities *events.Capabilities
	callbacks    events.Callbacks
	client       *resty.Client
	endpoints    []*endpoint
}

type endpoint struct {
	name string
	url  string
}

func (wh *WebHooks) Name() string { return "webhooks" }

func (wh *WebHooks) Init(ctx context.Context, prefix config.Prefix, callbacks events.Callbacks) error {
	*wh = WebHooks{
		ctx:          ctx,
		capabilities: &events.Capabilities{},
		callbacks:    callbacks,
		client:       restclient.New(ctx, prefix),
	}
	for _, conf := range prefix.GetObjectArray(WebHooksConfEndpoints) {
		name, _ := conf["name"].(string)
		url, _ := conf["url"].(string)
		if url == "" {
			return i18n.NewError(ctx, i18n.MsgWebhookURLEmpty, name)
		}
		wh.endpoints = append(wh.endpoints, &endpoint{name: name, url: url})
	}
	return nil
}

func (wh *WebHooks) Capabilities() *events.Capabilities {
	return wh.capabilities
}

func (wh *WebHooks) DeliveryRequest(ctx context.Context, event *paytypes.Event) error {
	for _, ep := range wh.endpoints {
		res, err := wh.client.R().
			SetContext(ctx).
			SetBody(event).
			Post(ep.url)
		if err != nil || !res.IsSuccess() {
			return restclient.WrapRestErr(ctx, res, err, i18n.MsgEventDeliveryFailed, wh.Name())
		}
		log.L(ctx).Debugf("Webhook %s delivered event %s (sequence=%d)", ep.name, event.ID, event.Sequence)
	}
	return nil
}
