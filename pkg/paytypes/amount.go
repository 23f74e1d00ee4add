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
	"math/big"

	"github.com/kaleido-io/payreg/internal/i18n"
)

const MaxAmountHexLength = 65

// Amount is a wrapper on a Go big.Int that standardizes JSON and DB
// serialization of a fungible payment amount
type Amount big.Int

func NewAmount(v int64) *Amount {
	return (*Amount)(big.NewInt(v))
}

func (a Amount) MarshalText() ([]byte, error) {
	// Represent as base 10 string in marshalled JSON
	return []byte((*big.Int)(&a).Text(10)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var val interface{}
	if err := json.Unmarshal(b, &val); err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgBigIntParseFailed, b)
	}
	switch val := val.(type) {
	case string:
		if _, ok := a.Int().SetString(val, 0); !ok {
			return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
		}
		return nil
	case float64:
		a.Int().SetInt64(int64(val))
		return nil
	default:
		return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
	}
}

func (a *Amount) Value() (driver.Value, error) {
	// Represent as base 16 string in database, to allow a 64 character limit
	res := (*big.Int)(a).Text(16)
	if len(res) > MaxAmountHexLength {
		return nil, i18n.NewError(context.Background(), i18n.MsgBigIntTooLarge, len(res), MaxAmountHexLength)
	}
	return res, nil
}

func (a *Amount) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		// Scan is different to JSON deserialization - always read as HEX (without any 0x prefix)
		if _, ok := a.Int().SetString(src, 16); !ok {
			return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, a)
		}
		return nil
	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, a)
	}
}

func (a *Amount) Int() *big.Int {
	return (*big.Int)(a)
}

func (a *Amount) Int64() int64 {
	if a == nil {
		return 0
	}
	return (*big.Int)(a).Int64()
}

func (a *Amount) String() string {
	if a == nil {
		return "0"
	}
	return (*big.Int)(a).Text(10)
}

func (a *Amount) Equals(a2 *Amount) bool {
	switch {
	case a == nil && a2 == nil:
		return true
	case a == nil || a2 == nil:
		return false
	default:
		return (*big.Int)(a).Cmp((*big.Int)(a2)) == 0
	}
}

// IsPositive is the validity check applied at payment creation
func (a *Amount) IsPositive() bool {
	return a != nil && (*big.Int)(a).Sign() > 0
}
