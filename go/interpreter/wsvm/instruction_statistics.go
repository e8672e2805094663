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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dsnet/golib/unitconv"
)

// statisticRunner is a runner that profiles the executed programs. Besides
// the frequency of instruction sequences it records which labels control is
// transferred to and how deep the call and heap usage of the programs get.
type statisticRunner struct {
	mutex sync.Mutex
	stats *statistics
}

func (s *statisticRunner) run(c *context) error {
	profile := newStatistics()
	profile.runs = 1
	recent := window{}
	start := time.Now()
	var err error
	for status := statusRunning; status == statusRunning && err == nil; {
		pc := c.pc
		if pc < len(c.code) {
			recent.push(c.code[pc].opcode)
			profile.record(&recent)
		}
		status, err = step(c)
		if err == nil && pc < len(c.code) {
			profile.observe(c, &c.code[pc], pc)
		}
	}
	profile.duration = time.Since(start)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	s.stats.merge(profile)
	return err
}

// getSummary returns the collected statistics in a human-readable format.
func (s *statisticRunner) getSummary() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	return s.stats.String()
}

func (s *statisticRunner) reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stats = newStatistics()
}

// maxSequenceLength is the length of the longest instruction sequence counted.
const maxSequenceLength = 3

// sequence is a run of up to maxSequenceLength consecutively executed
// instructions.
type sequence struct {
	ops    [maxSequenceLength]OpCode
	length int
}

func sequenceOf(ops ...OpCode) sequence {
	res := sequence{length: len(ops)}
	copy(res.ops[:], ops)
	return res
}

func (s sequence) String() string {
	builder := strings.Builder{}
	for _, op := range s.ops[:s.length] {
		fmt.Fprintf(&builder, "%-10v", op)
	}
	return builder.String()
}

// window tracks the most recently executed instructions, oldest first.
type window struct {
	ops    [maxSequenceLength]OpCode
	length int
}

func (w *window) push(op OpCode) {
	copy(w.ops[:], w.ops[1:])
	w.ops[maxSequenceLength-1] = op
	if w.length < maxSequenceLength {
		w.length++
	}
}

// suffix returns the n most recent instructions.
func (w *window) suffix(n int) sequence {
	return sequenceOf(w.ops[maxSequenceLength-n:]...)
}

// statistics is the profile of one or more program runs.
type statistics struct {
	runs      uint64
	steps     uint64
	duration  time.Duration
	sequences map[sequence]uint64
	// Number of control transfers per target label, including calls.
	branches     map[Label]uint64
	maxCallDepth int
	maxHeapCells int
}

func newStatistics() *statistics {
	return &statistics{
		sequences: map[sequence]uint64{},
		branches:  map[Label]uint64{},
	}
}

// record counts the instruction just added to the window together with the
// sequences it completes.
func (s *statistics) record(recent *window) {
	s.steps++
	for n := 1; n <= recent.length; n++ {
		s.sequences[recent.suffix(n)]++
	}
}

// observe inspects the state after the given instruction at pc completed.
func (s *statistics) observe(c *context, instruction *Instruction, pc int) {
	if instruction.opcode.HasLabel() && instruction.opcode != MARK && c.pc != pc+1 {
		s.branches[instruction.label]++
	}
	s.maxCallDepth = max(s.maxCallDepth, c.calls.len())
	s.maxHeapCells = max(s.maxHeapCells, c.heap.len())
}

func (s *statistics) merge(src *statistics) {
	s.runs += src.runs
	s.steps += src.steps
	s.duration += src.duration
	for k, v := range src.sequences {
		s.sequences[k] += v
	}
	for k, v := range src.branches {
		s.branches[k] += v
	}
	s.maxCallDepth = max(s.maxCallDepth, src.maxCallDepth)
	s.maxHeapCells = max(s.maxHeapCells, src.maxHeapCells)
}

// statisticsKey is a counted item that can be listed in a summary.
type statisticsKey interface {
	comparable
	fmt.Stringer
}

// topN returns the n most frequent keys of the given counts, ties broken by
// the rendered key.
func topN[K statisticsKey](counts map[K]uint64, n int, filter func(K) bool) []K {
	keys := make([]K, 0, len(counts))
	for k := range counts {
		if filter(k) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if a, b := counts[keys[i]], counts[keys[j]]; a != b {
			return a > b
		}
		return keys[i].String() < keys[j].String()
	})
	return keys[:min(n, len(keys))]
}

func (s *statistics) String() string {
	builder := strings.Builder{}
	write := func(format string, args ...any) {
		fmt.Fprintf(&builder, format, args...)
	}
	percent := func(count uint64) float32 {
		return float32(count*100) / float32(s.steps)
	}

	write("\n----- Statistics ------\n")
	write("\nRuns: %d\n", s.runs)
	write("\nSteps: %d", s.steps)
	if seconds := s.duration.Seconds(); seconds > 0 {
		rate := float64(s.steps) / seconds
		write(" (~%s steps per second)", unitconv.FormatPrefix(rate, unitconv.SI, 0))
	}
	write("\n")

	for _, section := range []struct {
		title  string
		length int
	}{{"Singles", 1}, {"Pairs", 2}, {"Triples", 3}} {
		write("\n%s:\n", section.title)
		ofLength := func(seq sequence) bool { return seq.length == section.length }
		for _, seq := range topN(s.sequences, 5, ofLength) {
			count := s.sequences[seq]
			write("\t%v: %d (%.2f%%)\n", seq, count, percent(count))
		}
	}

	write("\nBranch targets:\n")
	for _, label := range topN(s.branches, 5, func(Label) bool { return true }) {
		write("\t%-10v: %d\n", label, s.branches[label])
	}

	write("\nMax call depth: %d\n", s.maxCallDepth)
	write("Max heap cells: %d\n", s.maxHeapCells)
	write("\n")
	return builder.String()
}
