// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package wsvm

import (
	"fmt"
	"io"

	"github.com/Fantom-foundation/wsvm/go/ws"
)

// Registers the Whitespace VM as a possible interpreter implementation.
func init() {

	configs := map[string]Config{
		// This is the default configuration used by the command line tool.
		"wsvm": {},

		// Collects instruction statistics across all runs.
		"wsvm-stats": {
			WithStatistics: true,
		},

		// Parses the source on every run.
		"wsvm-no-cache": {
			CompilerConfig: CompilerConfig{
				CacheSize: -1,
			},
		},
	}

	for name, config := range configs {
		config := config
		err := ws.RegisterInterpreterFactory(name, func(custom any) (ws.Interpreter, error) {
			if custom == nil {
				return NewVm(config)
			}
			overrides, ok := custom.(Config)
			if !ok {
				return nil, fmt.Errorf("invalid configuration type %T", custom)
			}
			return NewVm(config.merge(overrides))
		})
		if err != nil {
			panic(err)
		}
	}
}

type Config struct {
	CompilerConfig
	// Trace, if set, receives a line for every executed instruction.
	Trace io.Writer
	// WithStatistics enables the collection of instruction statistics.
	WithStatistics bool
	runner         runner
}

// merge returns a copy of this configuration updated by all non-zero fields
// of the given overrides.
func (c Config) merge(overrides Config) Config {
	if overrides.CacheSize != 0 {
		c.CacheSize = overrides.CacheSize
	}
	if overrides.Trace != nil {
		c.Trace = overrides.Trace
	}
	if overrides.WithStatistics {
		c.WithStatistics = true
	}
	if overrides.runner != nil {
		c.runner = overrides.runner
	}
	return c
}

type wsvm struct {
	config   Config
	compiler *Compiler
}

var _ ws.ProfilingInterpreter = (*wsvm)(nil)

func NewVm(config Config) (*wsvm, error) {
	if config.Trace != nil && config.WithStatistics {
		return nil, fmt.Errorf("invalid configuration: tracing and statistics cannot be combined")
	}
	compiler, err := NewCompiler(config.CompilerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create compiler: %v", err)
	}
	if config.runner == nil {
		switch {
		case config.WithStatistics:
			config.runner = &statisticRunner{stats: newStatistics()}
		case config.Trace != nil:
			config.runner = newLogger(config.Trace)
		}
	}
	return &wsvm{config: config, compiler: compiler}, nil
}

func (v *wsvm) Run(params ws.Parameters) (ws.Result, error) {
	program, err := v.compiler.Compile(params.Filename, params.Source)
	if err != nil {
		return ws.Result{}, err
	}

	config := interpreterConfig{
		runner: v.config.runner,
	}

	return run(config, program, params)
}

func (v *wsvm) DumpProfile(output ws.Output) error {
	if statsRunner, ok := v.config.runner.(*statisticRunner); ok {
		return output.WriteString(statsRunner.getSummary())
	}
	return nil
}

func (v *wsvm) ResetProfile() {
	if statsRunner, ok := v.config.runner.(*statisticRunner); ok {
		statsRunner.reset()
	}
}
