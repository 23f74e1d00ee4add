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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPrincipals(t *testing.T) {
	r := &Register{
		Address:    NewUUID(),
		Controller: "0x1111",
	}
	assert.False(t, r.HasPrincipal("0xaaaa"))

	assert.True(t, r.AddPrincipal("0xaaaa"))
	assert.True(t, r.HasPrincipal("0xaaaa"))
	assert.False(t, r.AddPrincipal("0xaaaa")) // no duplicates

	assert.True(t, r.AddPrincipal("0xbbbb"))
	assert.True(t, r.RemovePrincipal("0xaaaa"))
	assert.False(t, r.HasPrincipal("0xaaaa"))
	assert.True(t, r.HasPrincipal("0xbbbb"))
	assert.False(t, r.RemovePrincipal("0xaaaa"))
}
