package tr_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/turnsignal/tr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// from README
func TestBasicUsage(t *testing.T) {
	count1 := tr.New(1)
	count2 := tr.New(2)
	plus := tr.Compute(func(v ...int) int { return v[0] + v[1] })
	total := plus(count1, count2)
	assert.Equal(t, 3, total.Get())

	count1.Update(func(v int) int { return v + 1 })
	assert.Equal(t, 4, total.Get())

	total.Dispose()
	count1.Update(func(v int) int { return v + 1 })
	assert.Equal(t, 4, total.Get())
	assert.Equal(t, 3, count1.Get())
}

func TestDefaultErrorHandler(t *testing.T) {
	var keys []string
	var errs []error
	tr.SetErrorHandler(func(key string, err error) {
		keys = append(keys, key)
		errs = append(errs, err)
	})
	t.Cleanup(func() { tr.SetErrorHandler(nil) })

	tr.New(1, tr.WithKey("quiet")).Observe(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "quiet", keys[0])
	assert.ErrorIs(t, errs[0], tr.ErrInvalidArgument)

	// a per-cell handler takes precedence
	own := 0
	tr.New(1, tr.WithErrorHandler(func(string, error) { own++ })).Observe(nil)
	assert.Equal(t, 1, own)
	assert.Len(t, errs, 1)
}

func TestComputationError(t *testing.T) {
	inner := errors.New("division by zero")

	err := error(&tr.ComputationError{Key: "ratio", Err: inner})
	assert.EqualError(t, err, `tr: computation "ratio" failed: division by zero`)
	assert.ErrorIs(t, err, inner)

	err = &tr.ComputationError{Err: inner}
	assert.EqualError(t, err, "tr: computation failed: division by zero")
}
