/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential-agent Velocity Network credential agent REST API.
//
//	Schemes: http, https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitynetwork/credential-agent/cmd/credential-agent/startcmd"
)

var logger = log.New("credential-agent")

func main() {
	rootCmd := &cobra.Command{
		Use: "credential-agent",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run credential-agent", log.WithError(err))
	}
}
