package framework

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/apiclient"
	"github.com/KuldeepMalhotra/FastAPI-Playwright-Framework/contract"
)

// TestHarness holds everything the tests need to know about the service under test.
type TestHarness struct {
	baseURL        string
	serviceInfo    ServiceInfo
	requestTimeout time.Duration
	validator      *contract.Validator
	logger         Logger
}

type HarnessOption func(*TestHarness)

// WithRequestTimeout sets the timeout of every request made by clients from NewClient.
func WithRequestTimeout(timeout time.Duration) HarnessOption {
	return func(h *TestHarness) { h.requestTimeout = timeout }
}

// WithContractValidator makes the validator available to tests through ContractValidator.
func WithContractValidator(v *contract.Validator) HarnessOption {
	return func(h *TestHarness) { h.validator = v }
}

// NewTestHarness creates a TestHarness instance, and verifies that the service is responding by
// querying its health resource. Progress is written to startupOutput.
func NewTestHarness(
	baseURL string,
	statusQueryTimeout time.Duration,
	debugLogger Logger,
	startupOutput io.Writer,
	opts ...HarnessOption,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if startupOutput == nil {
		startupOutput = io.Discard
	}

	h := &TestHarness{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  debugLogger,
	}
	for _, o := range opts {
		o(h)
	}

	info, err := awaitService(&http.Client{Timeout: time.Second * 5}, h.baseURL, statusQueryTimeout, startupOutput)
	if err != nil {
		return nil, err
	}
	h.serviceInfo = info
	return h, nil
}

func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

func (h *TestHarness) ServiceInfo() ServiceInfo {
	return h.serviceInfo
}

// ContractValidator returns nil unless contract validation was enabled.
func (h *TestHarness) ContractValidator() *contract.Validator {
	return h.validator
}

// NewClient creates an API client for one test. Its request log goes to logger if it is
// non-nil, or else to the harness's debug logger.
func (h *TestHarness) NewClient(logger Logger) (*apiclient.Client, error) {
	if logger == nil {
		logger = h.logger
	}
	return apiclient.New(h.baseURL, apiclient.WithLogger(logger), apiclient.WithTimeout(h.requestTimeout))
}
