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
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	migratedb "github.com/golang-migrate/migrate/v4/database"
)

// Provider defines the interface an individual provider must implement to customize the SQLCommon implementation
type Provider interface {

	// Name is the name of the database driver
	Name() string

	// MigrationsDir is the subdirectory for migrations
	MigrationsDir() string

	// Open creates the DB instances
	Open(url string) (*sql.DB, error)

	// GetMigrationDriver returns the migration driver implementation
	GetMigrationDriver(*sql.DB) (migratedb.Driver, error)

	// PlaceholderFormat returns the parameter placeholder format for the driver
	PlaceholderFormat() sq.PlaceholderFormat

	// SequenceField returns the driver specific sequence/autoincrement column expression for a table
	SequenceField(tableName string) string

	// UpdateInsertForSequenceReturn updates the INSERT query for returning the sequence, and
	// returns whether it needs to be run as a query to return the sequence field
	UpdateInsertForSequenceReturn(insert sq.InsertBuilder) (updatedInsert sq.InsertBuilder, runAsQuery bool)
}
