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

import "net/http"

var (
	MsgConfigFailed             = ffm("PR10101", "Failed to read config: %s")
	MsgJSONDecodeFailed         = ffm("PR10102", "Failed to decode input JSON", http.StatusBadRequest)
	MsgAPIServerStartFailed     = ffm("PR10103", "Unable to start listener on %s: %s")
	MsgInvalidUUID              = ffm("PR10104", "Invalid UUID supplied", http.StatusBadRequest)
	MsgResponseMarshalError     = ffm("PR10105", "Failed to serialize response data", http.StatusBadRequest)
	Msg404NotFound              = ffm("PR10106", "Not found", http.StatusNotFound)
	MsgUnknownDatabasePlugin    = ffm("PR10107", "Unknown database plugin: %s")
	MsgUnknownSubstratePlugin   = ffm("PR10108", "Unknown object store plugin: %s")
	MsgUnknownEventTransport    = ffm("PR10109", "Unknown event transport plugin: %s")
	MsgBigIntTooLarge           = ffm("PR10110", "Byte length of serialized integer is too large %d (max=%d)")
	MsgBigIntParseFailed        = ffm("PR10111", "Failed to parse JSON value '%s' into Amount", http.StatusBadRequest)
	MsgScanFailed               = ffm("PR10112", "Failed to restore type '%T' into '%T'")
	MsgTimeParseFail            = ffm("PR10113", "Cannot parse time as RFC3339, Unix, or UnixNano: '%s'", http.StatusBadRequest)
	MsgContextCanceled          = ffm("PR10114", "Context canceled")
	MsgDBInitFailed             = ffm("PR10115", "Database initialization failed")
	MsgDBBeginFailed            = ffm("PR10116", "Database begin transaction failed")
	MsgDBQueryFailed            = ffm("PR10117", "Database query failed")
	MsgDBInsertFailed           = ffm("PR10118", "Database insert failed")
	MsgDBUpdateFailed           = ffm("PR10119", "Database update failed")
	MsgDBCommitFailed           = ffm("PR10120", "Database commit failed")
	MsgDBMigrationFailed        = ffm("PR10121", "Database migration failed")
	MsgDBReadErr                = ffm("PR10122", "Database resultset read error from %s query")
	MsgOwnershipViolation       = ffm("PR10123", "Identity '%s' does not hold exclusive ownership of item '%s'", http.StatusConflict)
	MsgAlreadyConsumed          = ffm("PR10124", "Receivable for item '%s' at register '%s' has already been consumed", http.StatusConflict)
	MsgNotAuthorized            = ffm("PR10125", "Identity '%s' is not authorized to redeem at register '%s'", http.StatusUnauthorized)
	MsgNotController            = ffm("PR10126", "Identity '%s' is not the controller of register '%s'", http.StatusForbidden)
	MsgRegisterNotFound         = ffm("PR10127", "Register '%s' not found", http.StatusNotFound)
	MsgObjectNotFound           = ffm("PR10128", "Object '%s' not found", http.StatusNotFound)
	MsgObjectIDExists           = ffm("PR10129", "Object '%s' already exists", http.StatusConflict)
	MsgObjectVersionConflict    = ffm("PR10130", "Concurrent update of object '%s' detected (expected version %d)", http.StatusConflict)
	MsgWrongObjectKind          = ffm("PR10131", "Object '%s' is of kind '%s', not '%s'", http.StatusBadRequest)
	MsgInvalidAmount            = ffm("PR10132", "Payment amount must be a positive integer", http.StatusBadRequest)
	MsgInvalidIdentity          = ffm("PR10133", "Identity must not be empty", http.StatusBadRequest)
	MsgMissingCallerIdentity    = ffm("PR10134", "No caller identity supplied on request", http.StatusUnauthorized)
	MsgEarmarkRecipientRequired = ffm("PR10135", "An earmarked payment requires a designated recipient", http.StatusBadRequest)
	MsgWebsocketClientError     = ffm("PR10136", "Error received from WebSocket client: %s")
	MsgWSSendTimedOut           = ffm("PR10137", "Websocket send timed out")
	MsgWebhookURLEmpty          = ffm("PR10138", "Webhook endpoint '%s' is missing a URL")
	MsgEventDeliveryFailed      = ffm("PR10139", "Event delivery failed on transport '%s': %s")
	MsgNilOrNullObject          = ffm("PR10140", "Object is null")
	MsgEarmarkSelfOwned         = ffm("PR10141", "An earmarked payment cannot designate its payer as recipient", http.StatusBadRequest)
	MsgRequestTimeout           = ffm("PR10142", "The request with id '%s' timed out after %.2fms", http.StatusRequestTimeout)
	MsgPrincipalAlreadyListed   = ffm("PR10143", "Identity '%s' is already an authorized principal of register '%s'", http.StatusConflict)
	MsgPrincipalNotListed       = ffm("PR10144", "Identity '%s' is not an authorized principal of register '%s'", http.StatusNotFound)
	MsgUnknownEventType         = ffm("PR10145", "Unknown event type '%s'", http.StatusBadRequest)
	MsgInvalidOutputOption      = ffm("PR10146", "Invalid output option '%s'")
)
