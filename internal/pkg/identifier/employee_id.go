// Package identifier allocates the 8-digit employee numbers.
package identifier

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MinEmployeeID = 10_000_000
	MaxEmployeeID = 99_999_999
)

var (
	// ErrDuplicateID is returned by a create callback when storage rejected the id as taken.
	ErrDuplicateID = errors.New("employee id already taken")
	// ErrAttemptsExhausted means every create attempt collided.
	ErrAttemptsExhausted = errors.New("could not allocate a unique employee id")
)

// EmployeeIDLookup reports whether an employee id is already used.
type EmployeeIDLookup interface {
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

type Generator struct {
	lookup   EmployeeIDLookup
	intN     func(n int) int
	attempts *prometheus.CounterVec
}

type Option func(*Generator)

// WithSource replaces the random source. intN must return a value in [0, n).
func WithSource(intN func(n int) int) Option {
	return func(g *Generator) {
		g.intN = intN
	}
}

// WithAttemptCounter counts attempts by outcome ("accepted", "collision", "conflict").
func WithAttemptCounter(c *prometheus.CounterVec) Option {
	return func(g *Generator) {
		g.attempts = c
	}
}

func NewGenerator(lookup EmployeeIDLookup, opts ...Option) *Generator {
	g := &Generator{
		lookup: lookup,
		intN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Candidate draws a random id in [MinEmployeeID, MaxEmployeeID] without checking it.
func (g *Generator) Candidate() string {
	return strconv.Itoa(MinEmployeeID + g.intN(MaxEmployeeID-MinEmployeeID+1))
}

// Generate returns an id that no employee held at the time of the check.
// It retries until a free candidate is found or ctx is done. The unique index
// on employees.employee_id remains the real guarantee; see CreateWithUniqueID.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := g.Candidate()
		exists, err := g.lookup.ExistsByEmployeeID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check employee id: %w", err)
		}
		if !exists {
			g.observe("accepted")
			return candidate, nil
		}
		g.observe("collision")
	}
}

// CreateWithUniqueID generates an id and calls create with it, generating a new
// one whenever create reports ErrDuplicateID. Any other error stops immediately.
func (g *Generator) CreateWithUniqueID(ctx context.Context, maxAttempts int, create func(ctx context.Context, employeeID string) error) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		employeeID, err := g.Generate(ctx)
		if err != nil {
			return "", err
		}

		err = create(ctx, employeeID)
		if err == nil {
			return employeeID, nil
		}
		if !errors.Is(err, ErrDuplicateID) {
			return "", err
		}
		g.observe("conflict")
	}
	return "", ErrAttemptsExhausted
}

func (g *Generator) observe(outcome string) {
	if g.attempts != nil {
		g.attempts.WithLabelValues(outcome).Inc()
	}
}
