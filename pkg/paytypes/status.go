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

package paytypes

// NodeStatus is the information reported by the status API
type NodeStatus struct {
	Node        string                `json:"node"`
	Database    NodeStatusPlugin      `json:"database"`
	ObjectStore NodeStatusObjectStore `json:"objectStore"`
	Transports  []string              `json:"eventTransports"`
}

type NodeStatusPlugin struct {
	Type string `json:"type"`
}

type NodeStatusObjectStore struct {
	Type    string `json:"type"`
	Durable bool   `json:"durable"`
}
