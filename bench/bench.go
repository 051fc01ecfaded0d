// SPDX-License-Identifier: MIT

// Package bench measures repeated evaluation cost of the two evaluators &
// cross-checks their agreement.
//
// The scenario runner deliberately measures process user time, not wall
// time: the interesting quantity is parsing/propagation cost under repeated
// invocation, which the boundary contract keeps allocation-light.
package bench

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"gitlab.com/fisherprime/prefixcalc"
)

type (
	// Config defines configuration options for the bench operations.
	Config struct {
		Logger logrus.FieldLogger
		Out    io.Writer

		// Label identifies the toolchain in reports, standing in for the
		// reference harness' compiler matrix.
		Label string

		CSVPath    string
		Iterations uint64
	}

	// Scenario pairs an evaluator with a fixed program.
	Scenario struct {
		Parser      prefixcalc.Parser
		Description string
		Program     string
	}

	// Result holds one measured scenario.
	Result struct {
		Label       string
		Description string

		// Micros is the process user time consumed by the iteration loop.
		Micros uint64

		// State accumulates every evaluation's value, keeping the calls
		// observable to the compiler.
		State uint64
	}
)

const (
	// DefaultCSVPath is the report file scenario rows are appended to.
	DefaultCSVPath = "results.csv"

	// csvSeparator matches the reference harness' report format.
	csvSeparator = ';'
)

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Label == "" {
		c.Label = runtime.Version()
	}
	if c.CSVPath == "" {
		c.CSVPath = DefaultCSVPath
	}
	if c.Iterations < 1 {
		c.Iterations = 1
	}
}

// DefaultScenarios builds the canonical four: each evaluator against a valid
// & an invalid program.
func DefaultScenarios(okProgram, errProgram string) []Scenario {
	return []Scenario{
		{Description: "parser-panic-no-errors", Parser: prefixcalc.NewPanic(), Program: okProgram},
		{Description: "parser-results-no-errors", Parser: prefixcalc.NewResult(), Program: okProgram},
		{Description: "parser-panic-with-errors", Parser: prefixcalc.NewPanic(), Program: errProgram},
		{Description: "parser-results-with-errors", Parser: prefixcalc.NewResult(), Program: errProgram},
	}
}

// Run measures each Scenario over cfg.Iterations evaluations, prints a row
// per scenario to cfg.Out & appends the rows to the CSV report.
func Run(cfg *Config, scenarios []Scenario) (results []Result, err error) {
	cfg.Validate()

	results = make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		result := measure(cfg, scenario)

		if _, err = fmt.Fprintf(cfg.Out, "%20s  %-50s  %10dµs\n",
			result.Label, result.Description, result.Micros); err != nil {
			return
		}

		results = append(results, result)
	}

	err = AppendCSV(cfg.CSVPath, results)

	return
}

// measure times one Scenario's iteration loop.
func measure(cfg *Config, scenario Scenario) Result {
	var state uint64

	before := processTimeMicros()
	for iteration := uint64(0); iteration < cfg.Iterations; iteration++ {
		state += uint64(scenario.Parser.Execute(scenario.Program))
	}
	after := processTimeMicros()

	cfg.Logger.Debugf("scenario (%s) state sink: %d", scenario.Description, state)

	return Result{
		Label:       cfg.Label,
		Description: scenario.Description,
		Micros:      after - before,
		State:       state,
	}
}

// AppendCSV appends label;description;micros rows to the report at path,
// creating it when absent.
func AppendCSV(path string, results []Result) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = csvSeparator

	for _, result := range results {
		if err = w.Write([]string{
			result.Label,
			result.Description,
			strconv.FormatUint(result.Micros, 10),
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}

// LoadProgram reads a program from the first line of the file at path; a
// full program is exactly one line.
func LoadProgram(path string) (program string, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("open program: %w", err)
		return
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		program = scanner.Text()
	}
	err = scanner.Err()

	return
}

// processTimeMicros returns the process' consumed user time in microseconds.
func processTimeMicros() uint64 {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0
	}

	return uint64(usage.Utime.Sec)*1_000_000 + uint64(usage.Utime.Usec)
}
