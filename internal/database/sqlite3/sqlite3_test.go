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

//go:build cgo
// +build cgo

package sqlite3

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
)

func TestSQLite3Provider(t *testing.T) {
	sqlite := &SQLite3{}

	assert.Equal(t, "sqlite3", sqlite.Name())
	assert.Equal(t, "sqlite", sqlite.MigrationsDir())
	assert.Equal(t, sq.Dollar, sqlite.PlaceholderFormat())
	assert.Equal(t, "events.seq", sqlite.SequenceField("events"))
	assert.Equal(t, "seq", sqlite.SequenceField(""))

	insert := sq.Insert("events").Columns("id").Values("1")
	insert, query := sqlite.UpdateInsertForSequenceReturn(insert)
	sql, _, err := insert.ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "INSERT INTO events (id) VALUES (?)", sql)
	assert.False(t, query)

	db, err := sqlite.Open("file::memory:")
	assert.NoError(t, err)
	conn, err := db.Conn(context.Background())
	assert.NoError(t, err)
	conn.Close()
}
