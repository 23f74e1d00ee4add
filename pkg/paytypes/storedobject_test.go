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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredObjectDataRoundTrip(t *testing.T) {
	payment := &Payment{
		ID:            NewUUID(),
		CorrelationID: 42,
		Amount:        NewAmount(10),
		Payer:         "0xpayer",
		Created:       Now(),
	}
	so := &StoredObject{
		ID:    payment.ID,
		Kind:  ObjectKindPayment,
		Owner: "0xpayer",
	}
	assert.NoError(t, so.SetData(payment))

	var restored Payment
	assert.NoError(t, so.UnmarshalData(context.Background(), &restored))
	assert.Equal(t, uint64(42), restored.CorrelationID)
	assert.True(t, payment.Amount.Equals(restored.Amount))
	assert.True(t, payment.ID.Equals(restored.ID))
}

func TestStoredObjectRequireKind(t *testing.T) {
	so := &StoredObject{ID: NewUUID(), Kind: ObjectKindEarmark}
	assert.NoError(t, so.RequireKind(context.Background(), ObjectKindEarmark))
	err := so.RequireKind(context.Background(), ObjectKindPayment)
	assert.Regexp(t, "PR10131", err)
}

func TestStoredObjectMarkDeleted(t *testing.T) {
	so := &StoredObject{ID: NewUUID(), Kind: ObjectKindPayment}
	assert.False(t, so.IsDeleted())
	so.MarkDeleted()
	assert.True(t, so.IsDeleted())
}

func TestJSONObjectAccessors(t *testing.T) {
	jd := JSONObject{
		"str": "value",
		"num": float64(12345),
	}
	assert.Equal(t, "value", jd.GetString("str"))
	assert.Equal(t, "", jd.GetString("num"))
	assert.Equal(t, int64(12345), jd.GetInt64("num"))
	assert.Equal(t, int64(0), jd.GetInt64("missing"))
	assert.Contains(t, jd.String(), "value")
}

func TestJSONObjectDatabaseSerialization(t *testing.T) {
	jd := JSONObject{"some": "data"}
	v, err := jd.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"some":"data"}`, v.(string))

	jd2 := JSONObject{}
	assert.NoError(t, jd2.Scan(v))
	assert.Equal(t, "data", jd2.GetString("some"))

	jd3 := JSONObject{}
	assert.NoError(t, jd3.Scan(nil))
	assert.NoError(t, jd3.Scan([]byte(`{"b":"c"}`)))
	assert.Equal(t, "c", jd3.GetString("b"))
	assert.Regexp(t, "PR10112", jd3.Scan(42))
}
