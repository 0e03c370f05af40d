package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/bookstoretests"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/config"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/contract"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/logging"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/report"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const suiteName = "BookStore API"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var params commandParams
	if !params.Read(args, errOut) {
		return 2
	}
	if params.noColor {
		color.NoColor = true
	}
	logging.SetOutput(out)

	getenv, err := config.DotEnv(params.envFile, os.Getenv)
	if err != nil {
		fmt.Fprintf(errOut, "Configuration error: %s\n", err)
		return 1
	}
	cfg, err := config.Load(params.configFile, getenv)
	if err != nil {
		fmt.Fprintf(errOut, "Configuration error: %s\n", err)
		return 1
	}
	cfg.Override(params.env, params.serviceURL)
	env, err := cfg.Current()
	if err != nil {
		fmt.Fprintf(errOut, "Configuration error: %s\n", err)
		return 1
	}
	fmt.Fprintf(out, "Environment: %s (%s), account %s\n", cfg.Env, env.URL, env.Email)

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = logging.Tracer(logrus.Fields{"component": "harness"})
	}

	harnessOpts := []framework.HarnessOption{framework.WithRequestTimeout(params.requestTimeout)}
	var validator *contract.Validator
	if params.contract {
		if params.contractFile != "" {
			validator, err = contract.LoadFromFile(params.contractFile)
		} else {
			validator, err = contract.Load()
		}
		if err != nil {
			fmt.Fprintf(errOut, "Contract error: %s\n", err)
			return 1
		}
		harnessOpts = append(harnessOpts, framework.WithContractValidator(validator))
	}

	harness, err := framework.NewTestHarness(
		env.URL,
		params.statusQueryTimeout,
		mainDebugLogger,
		out,
		harnessOpts...,
	)
	if err != nil {
		fmt.Fprintf(errOut, "Service error: %s\n", err)
		return 1
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)

	fmt.Fprintln(out, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := bookstoretests.RunTestSuite(harness, params.filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	framework.PrintResults(results)
	if validator != nil {
		printCoverage(out, validator)
	}

	if err := writeReports(params, results); err != nil {
		fmt.Fprintf(errOut, "Report error: %s\n", err)
		return 1
	}
	if !results.OK() {
		return 1
	}
	return 0
}

func printCoverage(out io.Writer, validator *contract.Validator) {
	covered, uncovered := validator.Coverage()
	fmt.Fprintf(out, "Contract coverage: %d of %d operations\n", len(covered), len(covered)+len(uncovered))
	for _, op := range uncovered {
		fmt.Fprintf(out, "  not covered: %s\n", op)
	}
}

func writeReports(params commandParams, results framework.Results) error {
	if params.jsonReport != "" {
		if err := writeFile(params.jsonReport, func(w io.Writer) error {
			return report.WriteJSON(w, results)
		}); err != nil {
			return err
		}
	}
	if params.junitReport != "" {
		if err := writeFile(params.junitReport, func(w io.Writer) error {
			return report.WriteJUnit(w, suiteName, results)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
