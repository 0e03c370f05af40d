package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/config"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/framework"
)

const defaultStatusQueryTimeout = time.Second * 10

type commandParams struct {
	serviceURL         string
	env                string
	configFile         string
	envFile            string
	contractFile       string
	filters            framework.RegexFilters
	debug              bool
	debugAll           bool
	contract           bool
	requestTimeout     time.Duration
	statusQueryTimeout time.Duration
	jsonReport         string
	junitReport        string
	noColor            bool
}

// Read parses the command line. It returns false if the arguments are invalid, after writing
// the problem and the usage text to errOut.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.serviceURL, "url", "", "BookStore service URL (overrides the selected environment's URL)")
	fs.StringVar(&c.env, "env", "", "environment to test: local, dev, qa or prod (default from $ENV, else local)")
	fs.StringVar(&c.configFile, "config", "", "YAML file with environment definitions")
	fs.StringVar(&c.envFile, "env-file", config.DefaultDotEnvFile, "file of KEY=value environment variables, used if present")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.contract, "contract", false, "also validate every response against the BookStore API description")
	fs.StringVar(&c.contractFile, "contract-file", "", "OpenAPI document to validate against instead of the built-in one (implies -contract)")
	fs.DurationVar(&c.requestTimeout, "timeout", 0, "timeout for each request (0 means no timeout)")
	fs.DurationVar(&c.statusQueryTimeout, "wait", defaultStatusQueryTimeout, "how long to wait for the service to be up")
	fs.StringVar(&c.jsonReport, "json-report", "", "write a JSON report of the results to this file")
	fs.StringVar(&c.junitReport, "junit-report", "", "write a JUnit XML report of the results to this file")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	if c.requestTimeout < 0 {
		fmt.Fprintln(errOut, "-timeout cannot be negative")
		fs.Usage()
		return false
	}
	if c.contractFile != "" {
		c.contract = true
	}
	return true
}
