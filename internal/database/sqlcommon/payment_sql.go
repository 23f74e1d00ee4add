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

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/pkg/paytypes"
)

var (
	paymentColumns = []string{
		"id",
		"correlation_id",
		"amount",
		"payer",
		"payee",
		"status",
		"created",
		"updated",
	}
)

func (s *SQLCommon) UpsertPayment(ctx context.Context, payment *paytypes.PaymentView) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	rows, err := s.queryTx(ctx, tx,
		sq.Select("id").
			From("payments").
			Where(sq.Eq{"id": payment.ID}),
	)
	if err != nil {
		return err
	}
	exists := rows.Next()
	rows.Close()

	if exists {
		if _, err = s.updateTx(ctx, tx,
			sq.Update("payments").
				Set("payee", payment.To).
				Set("status", payment.Status).
				Set("updated", payment.Updated).
				Where(sq.Eq{"id": payment.ID}),
			nil,
		); err != nil {
			return err
		}
	} else {
		if _, err = s.insertTx(ctx, tx,
			sq.Insert("payments").
				Columns(paymentColumns...).
				Values(
					payment.ID,
					payment.CorrelationID,
					payment.Amount,
					payment.From,
					payment.To,
					payment.Status,
					payment.Created,
					payment.Updated,
				),
			nil,
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) paymentResult(ctx context.Context, row *sql.Rows) (*paytypes.PaymentView, error) {
	var payment paytypes.PaymentView
	err := row.Scan(
		&payment.ID,
		&payment.CorrelationID,
		&payment.Amount,
		&payment.From,
		&payment.To,
		&payment.Status,
		&payment.Created,
		&payment.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "payments")
	}
	return &payment, nil
}

func (s *SQLCommon) GetPaymentByID(ctx context.Context, id *paytypes.UUID) (payment *paytypes.PaymentView, err error) {
	rows, err := s.query(ctx,
		sq.Select(paymentColumns...).
			From("payments").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Payment '%s' not found", id)
		return nil, nil
	}

	return s.paymentResult(ctx, rows)
}

func (s *SQLCommon) GetPaymentsByStatus(ctx context.Context, status paytypes.PaymentStatus, limit int) (payments []*paytypes.PaymentView, err error) {
	query := sq.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"status": status}).
		OrderBy("created DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments = []*paytypes.PaymentView{}
	for rows.Next() {
		payment, err := s.paymentResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
