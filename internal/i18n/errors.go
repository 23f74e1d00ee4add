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

package i18n

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// NewError creates a new error
func NewError(ctx context.Context, msg MessageKey, inserts ...interface{}) error {
	return errors.New(ExpandWithCode(ctx, msg, inserts...))
}

// WrapError wraps an error with a coded message
func WrapError(ctx context.Context, err error, msg MessageKey, inserts ...interface{}) error {
	return errors.Wrap(err, ExpandWithCode(ctx, msg, inserts...))
}

// GetErrorCode extracts the message code prefix from a coded error, or returns
// an empty string for errors that did not originate from this catalog
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	errString := err.Error()
	idx := strings.Index(errString, ":")
	if idx < 0 || !strings.HasPrefix(errString, "PR") {
		return ""
	}
	return errString[0:idx]
}
