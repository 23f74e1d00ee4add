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

package restclient

import "github.com/kaleido-io/payreg/internal/config"

const (
	defaultRetryEnabled   = true
	defaultRetryCount     = 5
	defaultRetryInitDelay = "250ms"
	defaultRetryMaxDelay  = "30s"
	defaultRequestTimeout = "30s"
)

const (
	HTTPConfigURL            = "url"
	HTTPConfigHeaders        = "headers"
	HTTPConfigAuthUsername   = "auth.username"
	HTTPConfigAuthPassword   = "auth.password"
	HTTPConfigRetryEnabled   = "retry.enabled"
	HTTPConfigRetryCount     = "retry.count"
	HTTPConfigRetryInitDelay = "retry.initDelay"
	HTTPConfigRetryMaxDelay  = "retry.maxDelay"
	HTTPConfigRequestTimeout = "requestTimeout"

	// Unit test only
	HTTPCustomClient = "customClient"
)

func InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(HTTPConfigURL)
	prefix.AddKnownKey(HTTPConfigHeaders)
	prefix.AddKnownKey(HTTPConfigAuthUsername)
	prefix.AddKnownKey(HTTPConfigAuthPassword)
	prefix.AddKnownKey(HTTPConfigRetryEnabled, defaultRetryEnabled)
	prefix.AddKnownKey(HTTPConfigRetryCount, defaultRetryCount)
	prefix.AddKnownKey(HTTPConfigRetryInitDelay, defaultRetryInitDelay)
	prefix.AddKnownKey(HTTPConfigRetryMaxDelay, defaultRetryMaxDelay)
	prefix.AddKnownKey(HTTPConfigRequestTimeout, defaultRequestTimeout)

	prefix.AddKnownKey(HTTPCustomClient)
}
