/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsense/cmd"
	"github.com/humaidq/vitalsense/logging"
)

func main() {
	logging.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "vitalsense",
		Usage: "VitalSense - longitudinal lab report tracker",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdKnowledge,
			cmd.CmdClassify,
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
