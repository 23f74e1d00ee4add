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

package log

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

type (
	ctxLogKey struct{}
)

const truncatedFieldLen = 61

var rootLogger = logrus.NewEntry(logrus.StandardLogger())

// WithLogger adds the specified logger to the context
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField adds the specified field to the logger in the context
func WithLogField(ctx context.Context, key, value string) context.Context {
	if len(value) > truncatedFieldLen+3 {
		value = value[0:truncatedFieldLen] + "..."
	}
	return WithLogger(ctx, L(ctx).WithField(key, value))
}

// L accesses the current logger from the context
func L(ctx context.Context) *logrus.Entry {
	l := ctx.Value(ctxLogKey{})
	if l == nil {
		return rootLogger
	}
	return l.(*logrus.Entry)
}

// SetLevel sets the global log level
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Formatting allows customization of the log format
type Formatting struct {
	DisableColor bool
	ForceColor   bool
	UTC          bool
}

type utcFormat struct {
	f logrus.Formatter
}

func (utc *utcFormat) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return utc.f.Format(e)
}

// SetFormatting sets the log formatting for the process
func SetFormatting(format Formatting) {
	var formatter logrus.Formatter = &prefixed.TextFormatter{
		DisableColors:   format.DisableColor,
		ForceColors:     format.ForceColor,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  false,
		FullTimestamp:   true,
	}
	if format.UTC {
		formatter = &utcFormat{f: formatter}
	}
	logrus.SetFormatter(formatter)
}
