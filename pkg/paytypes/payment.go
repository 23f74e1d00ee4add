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

// Payment is a uniquely identified, exclusively owned unit of transferable
// value. Its identity is immutable for its whole lifetime; only its owner
// changes as it moves through the system. The correlation ID is chosen by
// the payer and may repeat across payments - (ID) is the uniqueness key,
// the correlation ID is purely for payer/payee reconciliation.
type Payment struct {
	ID            *UUID      `json:"id"`
	CorrelationID uint64     `json:"correlationId"`
	Amount        *Amount    `json:"amount"`
	Payer         Identity   `json:"payer"`
	Created       *Timestamp `json:"created"`
}

// Earmark wraps a payment so that only one designated recipient can ever
// unwrap it. The wrapper owns its payment exclusively - there is no sharing
// or aliasing of the inner value. It is created atomically with the payment,
// by the paying party only.
type Earmark struct {
	ID        *UUID      `json:"id"`
	Payment   *Payment   `json:"payment"`
	Recipient Identity   `json:"recipient"`
	Created   *Timestamp `json:"created"`
}

// OpenRedeemable marks the value classes a register's public redemption
// path is able to yield. Earmarks deliberately do not implement it - their
// redemption primitive lives with their defining package, so the restricted
// path cannot be reached through the open one.
type OpenRedeemable interface {
	isOpenRedeemable()
}

func (p *Payment) isOpenRedeemable() {}
