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
	"strconv"

	"github.com/kaleido-io/payreg/internal/apispec"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

var routes = []*apispec.Route{
	deleteRegisterPrincipal,
	getEventByID,
	getEvents,
	getRegister,
	getRegisterPending,
	getRegisters,
	getStatus,
	postEarmark,
	postPayment,
	postRegister,
	postRegisterRedeem,
	postRegisterRedeemEarmark,
	postRegisterPrincipal,
	postTransfer,
	putRegisterController,
}

func pathUUID(ctx context.Context, pp map[string]string, name string) (*paytypes.UUID, error) {
	return paytypes.ParseUUID(ctx, pp[name])
}

func bodyUUID(ctx context.Context, id *paytypes.UUID) (*paytypes.UUID, error) {
	if id == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidUUID)
	}
	return id, nil
}

func intQuery(qp map[string]string, name string, def int) int {
	if str, ok := qp[name]; ok {
		if v, err := strconv.Atoi(str); err == nil {
			return v
		}
	}
	return def
}

func int64Query(qp map[string]string, name string, def int64) int64 {
	if str, ok := qp[name]; ok {
		if v, err := strconv.ParseInt(str, 10, 64); err == nil {
			return v
		}
	}
	return def
}
