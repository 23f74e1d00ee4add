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
	"context"
	"database/sql/driver"
	"encoding/json"

	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
)

// JSONObject is a holder of a hash, that can be used to correlate data
// across the API and database serialization boundaries
type JSONObject map[string]interface{}

func (jd JSONObject) GetString(key string) string {
	s, _ := jd.GetStringOk(key)
	return s
}

func (jd JSONObject) GetStringOk(key string) (string, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		vString, ok := vInterface.(string)
		return vString, ok
	}
	return "", false
}

func (jd JSONObject) GetInt64(key string) int64 {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch v := vInterface.(type) {
		case float64:
			return int64(v)
		case int64:
			return v
		case json.Number:
			i, _ := v.Int64()
			return i
		}
	}
	return 0
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}

// Scan implements sql.Scanner
func (jd *JSONObject) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return json.Unmarshal(src, jd)
	case string:
		if src == "" {
			return nil
		}
		return json.Unmarshal([]byte(src), jd)
	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, jd)
	}
}

func (jd JSONObject) Value() (driver.Value, error) {
	if jd == nil {
		return nil, nil
	}
	b, err := json.Marshal(&jd)
	if err != nil {
		// Sanitize the object to strings, to avoid failure
		log.L(context.Background()).Warnf("Unable to serialize JSON object: %s", err)
		return "{}", nil
	}
	return string(b), nil
}
