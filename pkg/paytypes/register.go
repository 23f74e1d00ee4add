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

package paytypes

// Register is a long-lived addressable aggregate. Its address is assigned
// once at creation and never changes, which is what gives payers a stable
// destination regardless of who currently controls the register. The
// register never owns the payments anchored at its address - it only gates
// their redemption.
type Register struct {
	Address              *UUID      `json:"address"`
	Controller           Identity   `json:"controller"`
	AuthorizedPrincipals []Identity `json:"authorizedPrincipals"`
	Created              *Timestamp `json:"created"`
	Updated              *Timestamp `json:"updated"`
}

func (r *Register) HasPrincipal(id Identity) bool {
	for _, p := range r.AuthorizedPrincipals {
		if p == id {
			return true
		}
	}
	return false
}

func (r *Register) AddPrincipal(id Identity) bool {
	if r.HasPrincipal(id) {
		return false
	}
	r.AuthorizedPrincipals = append(r.AuthorizedPrincipals, id)
	return true
}

func (r *Register) RemovePrincipal(id Identity) bool {
	for i, p := range r.AuthorizedPrincipals {
		if p == id {
			r.AuthorizedPrincipals = append(r.AuthorizedPrincipals[0:i], r.AuthorizedPrincipals[i+1:]...)
			return true
		}
	}
	return false
}

// CapabilityClass is the redemption visibility tier of a receivable
type CapabilityClass string

const (
	// CapabilityClassOpen means any caller passing the register's own authorization policy may redeem
	CapabilityClassOpen CapabilityClass = "open"
	// CapabilityClassRestricted means only the defining package's handler can invoke the redemption primitive
	CapabilityClassRestricted CapabilityClass = "restricted"
)

// Ticket is the read model of a pending receivable anchored at a register
// address. It is never passed around as a first-class object - it is
// discovered by querying the items currently addressed to the register, and
// it can be consumed at most once.
type Ticket struct {
	Address       *UUID           `json:"address"`
	ItemID        *UUID           `json:"itemId"`
	Class         CapabilityClass `json:"class"`
	CorrelationID uint64          `json:"correlationId"`
	Amount        *Amount         `json:"amount"`
}
