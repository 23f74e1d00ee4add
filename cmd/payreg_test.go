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

package cmd

import (
	"fmt"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/kaleido-io/payreg/internal/apiserver"
	"github.com/kaleido-io/payreg/internal/orchestrator"
	"github.com/kaleido-io/payreg/mocks/orchestratormocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const configDir = "../test/data/config"

func TestRunMissingConfigFile(t *testing.T) {
	cfgFile = "missing-file-to-fail.yaml"
	defer func() { cfgFile = "" }()
	err := run()
	assert.Regexp(t, "PR10101", err)
}

func TestRunOrchestratorInitFail(t *testing.T) {
	cfgFile = configDir + "/payreg.core.yaml"
	defer func() { cfgFile = "" }()
	mor := &orchestratormocks.Orchestrator{}
	mor.On("Init", mock.Anything).Return(fmt.Errorf("pop"))
	getOrchestrator = func() orchestrator.Orchestrator { return mor }
	defer func() { getOrchestrator = orchestrator.NewOrchestrator }()

	err := run()
	assert.EqualError(t, err, "pop")
}

func TestRunOrchestratorStartFail(t *testing.T) {
	cfgFile = configDir + "/payreg.core.yaml"
	defer func() { cfgFile = "" }()
	mor := &orchestratormocks.Orchestrator{}
	mor.On("Init", mock.Anything).Return(nil)
	mor.On("Start").Return(fmt.Errorf("bang"))
	getOrchestrator = func() orchestrator.Orchestrator { return mor }
	defer func() { getOrchestrator = orchestrator.NewOrchestrator }()

	err := run()
	assert.EqualError(t, err, "bang")
}

func TestRunThenSignalShutdown(t *testing.T) {
	cfgFile = configDir + "/payreg.core.yaml"
	defer func() { cfgFile = "" }()
	mor := &orchestratormocks.Orchestrator{}
	mor.On("Init", mock.Anything).Return(nil)
	mor.On("Start").Return(nil)
	mor.On("WaitStop").Return()
	getOrchestrator = func() orchestrator.Orchestrator { return mor }
	getAPIServer = func() apiserver.Server { return apiserver.NewAPIServer() }
	defer func() { getOrchestrator = orchestrator.NewOrchestrator }()

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = syscall.Kill(os.Getpid(), syscall.SIGTERM)
	}()
	err := run()
	assert.NoError(t, err)
	mor.AssertExpectations(t)
}
