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

package sqlcommon

import (
	"context"
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

var (
	registerColumns = []string{
		"address",
		"controller",
		"principals",
		"created",
		"updated",
	}
)

func (s *SQLCommon) UpsertRegister(ctx context.Context, register *paytypes.Register) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	principals, err := json.Marshal(register.AuthorizedPrincipals)
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
	}

	rows, err := s.queryTx(ctx, tx,
		sq.Select("address").
			From("registers").
			Where(sq.Eq{"address": register.Address}),
	)
	if err != nil {
		return err
	}
	exists := rows.Next()
	rows.Close()

	if exists {
		if _, err = s.updateTx(ctx, tx,
			sq.Update("registers").
				Set("controller", register.Controller).
				Set("principals", string(principals)).
				Set("updated", register.Updated).
				Where(sq.Eq{"address": register.Address}),
			nil,
		); err != nil {
			return err
		}
	} else {
		if _, err = s.insertTx(ctx, tx,
			sq.Insert("registers").
				Columns(registerColumns...).
				Values(
					register.Address,
					register.Controller,
					string(principals),
					register.Created,
					register.Updated,
				),
			nil,
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) registerResult(ctx context.Context, row *sql.Rows) (*paytypes.Register, error) {
	var register paytypes.Register
	var principals string
	err := row.Scan(
		&register.Address,
		&register.Controller,
		&principals,
		&register.Created,
		&register.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "registers")
	}
	if principals != "" {
		if err := json.Unmarshal([]byte(principals), &register.AuthorizedPrincipals); err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "registers")
		}
	}
	return &register, nil
}

func (s *SQLCommon) GetRegisterByAddress(ctx context.Context, address *paytypes.UUID) (register *paytypes.Register, err error) {
	rows, err := s.query(ctx,
		sq.Select(registerColumns...).
			From("registers").
			Where(sq.Eq{"address": address}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Register '%s' not found", address)
		return nil, nil
	}

	return s.registerResult(ctx, rows)
}

func (s *SQLCommon) GetRegisters(ctx context.Context, limit, skip int) (registers []*paytypes.Register, err error) {
	query := sq.Select(registerColumns...).
		From("registers").
		OrderBy("created")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if skip > 0 {
		query = query.Offset(uint64(skip))
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registers = []*paytypes.Register{}
	for rows.Next() {
		register, err := s.registerResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		registers = append(registers, register)
	}

	return registers, nil
}
