// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	cliUtils "github.com/Fantom-foundation/wsvm/go/driver/cli"
	"github.com/Fantom-foundation/wsvm/go/interpreter/wsvm"
	"github.com/Fantom-foundation/wsvm/go/ws"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

// errUsage signals a command line the tool cannot act on. The usage text is
// printed instead of the error.
var errUsage = errors.New("invalid usage")

// run executes the tool with the given command line arguments and streams
// and returns the exit code of the process.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := newApp(stdin, stdout, stderr).Run(args); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	vmFlag := cliUtils.NewVmFlag()
	traceFlag := cliUtils.NewTraceFlag()
	statsFlag := cliUtils.NewStatsFlag()
	dumpFlag := cliUtils.NewDumpFlag()
	logLevelFlag := cliUtils.NewLogLevelFlag()

	app := &cli.App{
		Name:            "ws",
		Usage:           "Whitespace interpreter",
		UsageText:       "ws [FILE]",
		Version:         version,
		Copyright:       "(c) 2024 Fantom Foundation",
		HideHelp:        true,
		HideHelpCommand: true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			vmFlag,
			traceFlag,
			statsFlag,
			dumpFlag,
			logLevelFlag,
		},
		OnUsageError: func(context *cli.Context, _ error, _ bool) error {
			return showUsage(context)
		},
		Action: func(context *cli.Context) error {
			if context.NArg() != 1 {
				return showUsage(context)
			}
			level, err := logLevelFlag.Fetch(context)
			if err != nil {
				return err
			}
			return doRun(runOptions{
				filename: context.Args().First(),
				vm:       vmFlag.Fetch(context),
				trace:    traceFlag.Fetch(context),
				stats:    statsFlag.Fetch(context),
				dump:     dumpFlag.Fetch(context),
				stdin:    stdin,
				stdout:   stdout,
				stderr:   stderr,
				log:      newLogger(stderr, level),
			})
		},
	}
	return cliUtils.AddCommonFlags(app)
}

func showUsage(context *cli.Context) error {
	if err := cli.ShowAppHelp(context); err != nil {
		return err
	}
	return errUsage
}

type runOptions struct {
	filename string
	vm       string
	trace    bool
	stats    bool
	dump     bool
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	log      *slog.Logger
}

func doRun(opts runOptions) error {
	source, err := os.ReadFile(opts.filename)
	if err != nil {
		return err
	}
	opts.log.Debug("source loaded", "file", opts.filename, "bytes", len(source))

	config := wsvm.Config{
		WithStatistics: opts.stats,
	}
	if opts.trace {
		config.Trace = opts.stderr
	}

	if opts.dump {
		program, err := wsvm.NewParser(opts.filename, string(source)).ParseAll()
		if err != nil {
			return err
		}
		opts.log.Debug("program parsed", "instructions", len(program.Code), "labels", len(program.Labels))
		if _, err := fmt.Fprint(opts.stderr, program); err != nil {
			return err
		}
	}

	interpreter, err := ws.NewInterpreter(opts.vm, config)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := interpreter.Run(ws.Parameters{
		Filename: opts.filename,
		Source:   string(source),
		Input:    ws.NewReaderInput(opts.stdin),
		Output:   ws.NewWriterOutput(opts.stdout),
	})
	opts.log.Debug("run finished", "vm", opts.vm, "steps", res.Steps, "duration", time.Since(start), "error", err)

	if profiler, ok := interpreter.(ws.ProfilingInterpreter); ok && opts.stats {
		if err := profiler.DumpProfile(ws.NewWriterOutput(opts.stderr)); err != nil {
			return err
		}
	}
	return err
}
