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
	"net/http"
	"testing"

	"github.com/kaleido-io/payreg/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestHTTPServerStartStop(t *testing.T) {
	config.Reset()
	config.Set(config.HTTPPort, 0)
	ctx, cancel := context.WithCancel(context.Background())
	hs, err := newHTTPServer(ctx, http.NewServeMux())
	assert.NoError(t, err)
	go hs.serveHTTP(ctx)
	cancel()
	assert.NoError(t, <-hs.onClose)
}

func TestHTTPServerBadAddress(t *testing.T) {
	config.Reset()
	config.Set(config.HTTPAddress, "...wrong...")
	_, err := newHTTPServer(context.Background(), http.NewServeMux())
	assert.Regexp(t, "PR10103", err)
}
