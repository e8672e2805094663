// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

// Flags are created per application since urfave/cli records values taken
// from the environment in the flag instances.

type VmFlagType struct {
	cli.StringFlag
}

func NewVmFlag() *VmFlagType {
	return &VmFlagType{
		cli.StringFlag{
			Name:    "vm",
			Usage:   "name of the interpreter configuration to run the program with",
			Value:   "wsvm",
			EnvVars: []string{"WS_VM"},
		},
	}
}

func (f *VmFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type TraceFlagType struct {
	cli.BoolFlag
}

func NewTraceFlag() *TraceFlagType {
	return &TraceFlagType{
		cli.BoolFlag{
			Name:    "trace",
			Usage:   "print every executed instruction to stderr",
			EnvVars: []string{"WS_TRACE"},
		},
	}
}

func (f *TraceFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type StatsFlagType struct {
	cli.BoolFlag
}

func NewStatsFlag() *StatsFlagType {
	return &StatsFlagType{
		cli.BoolFlag{
			Name:    "stats",
			Usage:   "print instruction statistics to stderr after the run",
			EnvVars: []string{"WS_STATS"},
		},
	}
}

func (f *StatsFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type DumpFlagType struct {
	cli.BoolFlag
}

func NewDumpFlag() *DumpFlagType {
	return &DumpFlagType{
		cli.BoolFlag{
			Name:  "dump",
			Usage: "print the parsed program to stderr before running it",
		},
	}
}

func (f *DumpFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type LogLevelFlagType struct {
	cli.StringFlag
}

func NewLogLevelFlag() *LogLevelFlagType {
	return &LogLevelFlagType{
		cli.StringFlag{
			Name:    "log-level",
			Usage:   "diagnostic log level, one of debug, info, warn, error",
			Value:   "warn",
			EnvVars: []string{"WS_LOG_LEVEL"},
		},
	}
}

func (f *LogLevelFlagType) Fetch(context *cli.Context) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(context.String(f.Name))); err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

var cpuProfileFlag = &cli.StringFlag{
	Name:      "cpuprofile",
	Usage:     "store CPU profile in the provided filename",
	TakesFile: true,
}

// AddCommonFlags extends the given application by the flags shared by all
// tools and wraps its action to honor them.
func AddCommonFlags(app *cli.App) *cli.App {
	app.Flags = append(app.Flags, cpuProfileFlag)

	action := app.Action
	app.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := ctx.String(cpuProfileFlag.Name); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return app
}
