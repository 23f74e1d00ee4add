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
	eventColumns = []string{
		"id",
		"etype",
		"ref",
		"info",
		"created",
	}
)

func (s *SQLCommon) InsertEvent(ctx context.Context, event *paytypes.Event) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	event.Sequence, err = s.insertTx(ctx, tx,
		sq.Insert("events").
			Columns(eventColumns...).
			Values(
				event.ID,
				string(event.Type),
				event.Reference,
				event.Info,
				event.Created,
			),
		func() {
			if s.callbacks != nil {
				s.callbacks.EventCreated(event.Sequence)
			}
		},
	)
	if err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) eventResult(ctx context.Context, row *sql.Rows) (*paytypes.Event, error) {
	var event paytypes.Event
	event.Info = paytypes.JSONObject{}
	err := row.Scan(
		&event.ID,
		&event.Type,
		&event.Reference,
		&event.Info,
		&event.Created,
		// Must be added to the list of columns in all selects
		&event.Sequence,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "events")
	}
	return &event, nil
}

func (s *SQLCommon) eventSelectColumns() []string {
	cols := append([]string{}, eventColumns...)
	return append(cols, s.provider.SequenceField("events"))
}

func (s *SQLCommon) GetEventByID(ctx context.Context, id *paytypes.UUID) (event *paytypes.Event, err error) {
	rows, err := s.query(ctx,
		sq.Select(s.eventSelectColumns()...).
			From("events").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Event '%s' not found", id)
		return nil, nil
	}

	return s.eventResult(ctx, rows)
}

func (s *SQLCommon) GetEvents(ctx context.Context, afterSequence int64, limit int) (events []*paytypes.Event, err error) {
	query := sq.Select(s.eventSelectColumns()...).
		From("events").
		Where(sq.Gt{s.provider.SequenceField("events"): afterSequence}).
		OrderBy(s.provider.SequenceField("events"))
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events = []*paytypes.Event{}
	for rows.Next() {
		event, err := s.eventResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
