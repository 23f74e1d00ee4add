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

package i18n

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestExpand(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := Expand(ctx, MsgWebsocketClientError, "myinsert")
	assert.Equal(t, "Error received from WebSocket client: myinsert", str)
}

func TestExpandWithCode(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := ExpandWithCode(ctx, MsgWebsocketClientError, "myinsert")
	assert.Equal(t, "PR10136: Error received from WebSocket client: myinsert", str)
}

func TestGetStatusHint(t *testing.T) {
	code, ok := GetStatusHint(string(MsgNotAuthorized))
	assert.True(t, ok)
	assert.Equal(t, 401, code)
}

func TestDuplicateKey(t *testing.T) {
	ffm("ABCD1234", "test1")
	assert.Panics(t, func() {
		ffm("ABCD1234", "test2")
	})
}

func TestNewErrorCode(t *testing.T) {
	err := NewError(context.Background(), MsgAlreadyConsumed, "item1", "reg1")
	assert.Equal(t, "PR10124", GetErrorCode(err))
}

func TestWrapErrorCode(t *testing.T) {
	err := WrapError(context.Background(), fmt.Errorf("pop"), MsgDBInitFailed)
	assert.Equal(t, "PR10115", GetErrorCode(err))
	assert.Regexp(t, "pop", err)
}

func TestGetErrorCodeNonCatalog(t *testing.T) {
	assert.Equal(t, "", GetErrorCode(nil))
	assert.Equal(t, "", GetErrorCode(fmt.Errorf("pop")))
}

func TestErrorCodesDistinct(t *testing.T) {
	// The redemption failure modes must remain distinguishable downstream
	assert.NotEqual(t, string(MsgAlreadyConsumed), string(MsgNotAuthorized))
	assert.NotEqual(t, string(MsgAlreadyConsumed), string(MsgOwnershipViolation))
}
