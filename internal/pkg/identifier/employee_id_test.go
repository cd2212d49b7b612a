package identifier

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eightDigits = regexp.MustCompile(`^[1-9][0-9]{7}$`)

type setLookup struct {
	taken map[string]bool
	calls int
	err   error
}

func (s *setLookup) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.taken[employeeID], nil
}

// sequence returns the given offsets in order, then repeats the last one.
func sequence(offsets ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := offsets[min(i, len(offsets)-1)]
		i++
		return v % n
	}
}

func TestGenerate_ReturnsEightDigits(t *testing.T) {
	g := NewGenerator(&setLookup{})

	for i := 0; i < 200; i++ {
		id, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, eightDigits, id)
	}
}

func TestCandidate_Bounds(t *testing.T) {
	low := NewGenerator(nil, WithSource(func(int) int { return 0 }))
	high := NewGenerator(nil, WithSource(func(n int) int { return n - 1 }))

	assert.Equal(t, "10000000", low.Candidate())
	assert.Equal(t, "99999999", high.Candidate())
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	lookup := &setLookup{taken: map[string]bool{"10000000": true, "10000001": true}}
	g := NewGenerator(lookup, WithSource(sequence(0, 1, 2)))

	id, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "10000002", id)
	assert.Equal(t, 3, lookup.calls)
}

func TestGenerate_LookupError(t *testing.T) {
	boom := errors.New("connection refused")
	g := NewGenerator(&setLookup{err: boom})

	_, err := g.Generate(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestGenerate_StopsWhenContextDone(t *testing.T) {
	lookup := &setLookup{taken: map[string]bool{"10000000": true}}
	g := NewGenerator(lookup, WithSource(sequence(0)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateWithUniqueID_RetriesOnDuplicate(t *testing.T) {
	g := NewGenerator(&setLookup{}, WithSource(sequence(5, 6, 7)))
	var tried []string

	id, err := g.CreateWithUniqueID(context.Background(), 5, func(ctx context.Context, employeeID string) error {
		tried = append(tried, employeeID)
		if len(tried) < 3 {
			return ErrDuplicateID
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "10000007", id)
	assert.Equal(t, []string{"10000005", "10000006", "10000007"}, tried)
}

func TestCreateWithUniqueID_Exhausted(t *testing.T) {
	g := NewGenerator(&setLookup{})
	calls := 0

	_, err := g.CreateWithUniqueID(context.Background(), 3, func(ctx context.Context, employeeID string) error {
		calls++
		return ErrDuplicateID
	})

	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, 3, calls)
}

func TestCreateWithUniqueID_OtherErrorStops(t *testing.T) {
	g := NewGenerator(&setLookup{})
	boom := errors.New("email taken")
	calls := 0

	_, err := g.CreateWithUniqueID(context.Background(), 5, func(ctx context.Context, employeeID string) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestGenerator_CountsAttempts(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "attempts_total"}, []string{"outcome"})
	lookup := &setLookup{taken: map[string]bool{"10000000": true}}
	g := NewGenerator(lookup, WithSource(sequence(0, 1)), WithAttemptCounter(counter))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("collision")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("accepted")))
}
