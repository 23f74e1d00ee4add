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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaleido-io/payreg/internal/apiserver"
	"github.com/kaleido-io/payreg/internal/config"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/kaleido-io/payreg/internal/log"
	"github.com/kaleido-io/payreg/internal/orchestrator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

// Overridden by the tests, to inject mocks under the command
var getOrchestrator = orchestrator.NewOrchestrator
var getAPIServer = apiserver.NewAPIServer

var rootCmd = &cobra.Command{
	Use:   "payreg",
	Short: "Payreg is a payment routing node, anchoring receivables at stable register addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "file", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func run() error {
	orchestrator.InitConfigPrefixes()
	err := config.ReadConfig(cfgFile)

	// Logging is set up after reading config, even when that failed, so the
	// failure itself is reported in the configured form
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", os.Getpid()))
	log.SetLevel(config.GetString(config.LogLevel))
	log.SetFormatting(log.Formatting{
		DisableColor: !config.GetBool(config.LogColor),
		UTC:          config.GetBool(config.LogUTC),
	})
	l := log.L(ctx)
	l.Infof("Payment register node")
	l.Infof("© Copyright 2022 Kaleido, Inc.")

	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, cfgFile)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sigs
		l.Infof("Shutting down on %s signal", sig)
		cancel()
	}()

	o := getOrchestrator()
	if err := o.Init(ctx); err != nil {
		return err
	}
	if err := o.Start(); err != nil {
		return err
	}

	err = getAPIServer().Serve(ctx, o)
	cancel()
	o.WaitStop()
	l.Infof("Shutdown complete")
	return err
}
