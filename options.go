package nxcube

import "go.uber.org/zap"

// Option configures reduction behavior.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	solver      Solver3x3
	maxAttempts int
	onPhase     func(ReductionPhase)
}

func defaultConfig() *config {
	return &config{
		logger:      zap.NewNop(),
		maxAttempts: 3,
	}
}

// WithLogger attaches a structured logger to the reduction engines.
// The default discards all output.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithSolver supplies the downstream 3x3 solver the orchestrator hands the
// reduced cube to. Without one, Solve stops after reduction.
func WithSolver(s Solver3x3) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithMaxAttempts overrides the total solve attempt bound (1 initial plus
// parity-fix retries). The default is 3.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithPhaseCallback fires whenever the progress tracker records a new
// highest reduction phase.
func WithPhaseCallback(cb func(ReductionPhase)) Option {
	return func(c *config) {
		c.onPhase = cb
	}
}
