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

package paytypes

import (
	"github.com/aidarkhanov/nanoid"
)

const (
	// ShortIDAlphabet is designed for easy double-click select
	ShortIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
)

// ShortID returns a short random identifier, used for correlating log lines
// and for ephemeral connection identifiers - not for stored objects
func ShortID() string {
	return nanoid.Must(nanoid.Generate(ShortIDAlphabet, 8))
}

// Named is implemented by all plugins
type Named interface {
	Name() string
}

// Identity is an opaque, authenticated principal or destination supplied by
// the submission layer. A register's stable address (the string form of its
// object UUID) is also a valid Identity, so payers address a register
// exactly the way they address an account.
type Identity string

func (id Identity) String() string {
	return string(id)
}

// IsSpecified is the minimal validity check on identities crossing the API boundary
func (id Identity) IsSpecified() bool {
	return len(id) > 0
}
