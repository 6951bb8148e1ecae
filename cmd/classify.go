/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsense/biomarker"
)

var CmdClassify = &cli.Command{
	Name:      "classify",
	Usage:     "Classify a value against a reference range",
	ArgsUsage: "<value> <reference range>",
	Action:    classify,
}

func classify(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errClassifyUsage
	}

	value, err := strconv.ParseFloat(cmd.Args().Get(0), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %q", errInvalidValue, cmd.Args().Get(0))
	}

	rangeText := cmd.Args().Get(1)
	w := cmd.Root().Writer

	if r, ok := biomarker.ParseRange(rangeText); ok {
		fmt.Fprintf(w, "range: %s\n", r)
	} else {
		fmt.Fprintln(w, "range: unparseable")
	}

	fmt.Fprintf(w, "status: %s\n", biomarker.Classify(value, rangeText))

	return nil
}
