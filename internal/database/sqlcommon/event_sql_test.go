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

package sqlcommon

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kaleido-io/payreg/pkg/paytypes"
	"github.com/stretchr/testify/assert"
)

func testEventRows(events ...*paytypes.Event) *sqlmock.Rows {
	rows := sqlmock.NewRows(append(append([]string{}, eventColumns...), "seq"))
	for _, event := range events {
		rows.AddRow(
			event.ID.String(),
			string(event.Type),
			event.Reference.String(),
			event.Info.String(),
			event.Created.UnixNano(),
			event.Sequence,
		)
	}
	return rows
}

func TestInsertEventAssignsSequenceAndFiresCallback(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*events").WillReturnResult(sqlmock.NewResult(12345, 1))
	mock.ExpectCommit()
	s.callbacks.On("EventCreated", int64(12345)).Return()

	event := paytypes.NewEvent(paytypes.EventTypePaymentSent, paytypes.NewUUID(), paytypes.JSONObject{"amount": "10"})
	err := s.InsertEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), event.Sequence)
	assert.NoError(t, mock.ExpectationsWereMet())
	s.callbacks.AssertExpectations(t)
}

func TestInsertEventFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertEvent(context.Background(), &paytypes.Event{})
	assert.Regexp(t, "PR10116", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	event := paytypes.NewEvent(paytypes.EventTypePaymentSent, paytypes.NewUUID(), nil)
	err := s.InsertEvent(context.Background(), event)
	assert.Regexp(t, "PR10118", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailCommit(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(fmt.Errorf("pop"))
	event := paytypes.NewEvent(paytypes.EventTypeRegisterCreated, paytypes.NewUUID(), nil)
	err := s.InsertEvent(context.Background(), event)
	assert.Regexp(t, "PR10120", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventByIDOk(t *testing.T) {
	s, mock := newMockProvider().init()
	event := &paytypes.Event{
		ID:        paytypes.NewUUID(),
		Type:      paytypes.EventTypePaymentProcessed,
		Reference: paytypes.NewUUID(),
		Info:      paytypes.JSONObject{"redeemer": "acct-bob"},
		Created:   paytypes.Now(),
		Sequence:  10,
	}
	mock.ExpectQuery("SELECT .*").WillReturnRows(testEventRows(event))
	eventRead, err := s.GetEventByID(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, *event.ID, *eventRead.ID)
	assert.Equal(t, paytypes.EventTypePaymentProcessed, eventRead.Type)
	assert.Equal(t, "acct-bob", eventRead.Info.GetString("redeemer"))
	assert.Equal(t, int64(10), eventRead.Sequence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventByIDSelectFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetEventByID(context.Background(), paytypes.NewUUID())
	assert.Regexp(t, "PR10117", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventByIDNotFound(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	event, err := s.GetEventByID(context.Background(), paytypes.NewUUID())
	assert.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventByIDScanFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetEventByID(context.Background(), paytypes.NewUUID())
	assert.Regexp(t, "PR10122", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsOk(t *testing.T) {
	s, mock := newMockProvider().init()
	ev1 := paytypes.NewEvent(paytypes.EventTypePaymentSent, paytypes.NewUUID(), nil)
	ev1.Sequence = 1
	ev2 := paytypes.NewEvent(paytypes.EventTypePaymentProcessed, paytypes.NewUUID(), nil)
	ev2.Sequence = 2
	mock.ExpectQuery("SELECT .*").WillReturnRows(testEventRows(ev1, ev2))
	events, err := s.GetEvents(context.Background(), 0, 25)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Sequence)
	assert.Equal(t, int64(2), events[1].Sequence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetEvents(context.Background(), 0, 0)
	assert.Regexp(t, "PR10117", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsScanFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only one"))
	_, err := s.GetEvents(context.Background(), 0, 0)
	assert.Regexp(t, "PR10122", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
