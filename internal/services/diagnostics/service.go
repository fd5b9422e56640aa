package diagnostics

import (
	"context"
	"time"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("diagnostics")

// service implements the Service interface
type service struct {
	checks  []Check
	timeout time.Duration
}

// New creates a new diagnostics service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	return &service{
		checks:  cfg.Checks,
		timeout: timeout,
	}, nil
}

// Run executes the checks one after another. A failing check never stops
// the checks after it.
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	output := &RunOutput{
		Results: make([]*Result, 0, len(s.checks)),
		Healthy: true,
	}

	for _, check := range s.checks {
		result := s.run(ctx, check)
		if !result.Passed {
			output.Healthy = false
			log.Warningf("check %q failed: %s", result.Name, result.Error)
		}
		output.Results = append(output.Results, result)
	}

	return output, nil
}

func (s *service) run(ctx context.Context, check Check) *Result {
	checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	err := check.Run(checkCtx)
	result := &Result{
		Name:     check.Name,
		Passed:   err == nil,
		Duration: time.Since(started),
	}
	if err != nil {
		result.Error = err.Error()
	}

	return result
}
