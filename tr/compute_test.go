package tr_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/delaneyj/turnsignal/tr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(v ...int) int {
	total := 0
	for _, x := range v {
		total += x
	}
	return total
}

func TestCompute(t *testing.T) {
	/*
	   src
	    |
	   dep
	*/
	t.Run("propagation", func(t *testing.T) {
		src := tr.New(1)
		dep := tr.Compute(func(v ...int) int { return v[0] * 2 })(src)

		var seen []int
		dep.Observe(func(v int) { seen = append(seen, v) })
		assert.Equal(t, []int{2}, seen)

		src.Set(5)
		assert.Equal(t, 10, dep.Get())
		assert.Equal(t, []int{2, 10}, seen)
	})

	/*
	   a  b
	   | /
	   sum
	*/
	t.Run("multi source", func(t *testing.T) {
		a, b := tr.New(1), tr.New(2)
		s := tr.Compute(sum)(a, b)
		assert.Equal(t, 3, s.Get())

		b.Set(6)
		assert.Equal(t, 7, s.Get())
		a.Set(4)
		assert.Equal(t, 10, s.Get())
	})

	/*
	   c1  c2
	    | / |
	   s1   |
	    |  /
	    s2
	*/
	t.Run("chained", func(t *testing.T) {
		plus := tr.Compute(func(v ...int) int { return v[0] + v[1] })
		c1, c2 := tr.New(1), tr.New(2)
		s1 := plus(c1, c2)
		s2 := plus(s1, c2)
		assert.Equal(t, 3, s1.Get())
		assert.Equal(t, 5, s2.Get())

		var seen []int
		s2.Observe(func(v int) { seen = append(seen, v) })

		c2.Set(6)
		assert.Equal(t, 7, s1.Get())
		assert.Equal(t, 13, s2.Get())
		assert.Equal(t, []int{5, 13}, seen)
	})

	t.Run("computes once on construction", func(t *testing.T) {
		a, b := tr.New(1), tr.New(2)
		callCount := 0
		s := tr.Compute(func(v ...int) int {
			callCount++
			return sum(v...)
		})(a, b)
		assert.Equal(t, 3, s.Get())
		assert.Equal(t, 1, callCount)

		a.Set(2)
		assert.Equal(t, 2, callCount)
	})

	t.Run("repeated source is watched once", func(t *testing.T) {
		x := tr.New(3)
		callCount := 0
		square := tr.Compute(func(v ...int) int {
			callCount++
			return v[0] * v[1]
		})(x, x)
		assert.Equal(t, 9, square.Get())

		x.Set(4)
		assert.Equal(t, 16, square.Get())
		assert.Equal(t, 2, callCount)
	})

	t.Run("no sources", func(t *testing.T) {
		c := tr.Compute(func(v ...int) int { return len(v) })()
		assert.Equal(t, 0, c.Get())
	})

	t.Run("writes recompute", func(t *testing.T) {
		a := tr.New(2)
		d := tr.Compute(func(v ...int) int { return v[0] * 3 })(a)
		assert.Equal(t, 6, d.Set(100))
		assert.Equal(t, 6, d.Get())
	})
}

func TestComputeDispose(t *testing.T) {
	t.Run("halts propagation", func(t *testing.T) {
		src := tr.New(1)
		callCount := 0
		dep := tr.Compute(func(v ...int) int {
			callCount++
			return v[0] * 2
		})(src)
		observed := 0
		dep.Observe(func(int) { observed++ })

		dep.Dispose()
		src.Set(5)
		src.Set(6)
		assert.Equal(t, 2, dep.Get())
		assert.Equal(t, 1, callCount)
		assert.Equal(t, 1, observed)
	})

	t.Run("siblings keep working", func(t *testing.T) {
		src := tr.New(1)
		double := tr.Compute(func(v ...int) int { return v[0] * 2 })(src)
		triple := tr.Compute(func(v ...int) int { return v[0] * 3 })(src)

		double.Dispose()
		src.Set(2)
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 6, triple.Get())
	})

	t.Run("disposed mid propagation", func(t *testing.T) {
		src := tr.New(1)
		var victim *tr.Cell[int]
		tr.Compute(func(v ...int) int {
			if v[0] > 1 && victim != nil {
				victim.Dispose()
			}
			return v[0]
		})(src)
		victim = tr.Compute(func(v ...int) int { return v[0] * 10 })(src)

		src.Set(2)
		assert.True(t, victim.Disposed())
		assert.Equal(t, 10, victim.Get())
	})
}

func TestComputationErrorIsolation(t *testing.T) {
	/*
	      src
	     /   \
	   bad   good
	    |
	   after
	*/
	log := &errorLog{}
	src := tr.New(1)
	bad := tr.Compute(func(v ...int) int {
		if v[0] > 1 {
			panic(fmt.Sprintf("cannot handle %d", v[0]))
		}
		return v[0]
	}, tr.WithKey("bad"), tr.WithErrorHandler(log.handler()))(src)
	afterCount := 0
	after := tr.Compute(func(v ...int) int {
		afterCount++
		return v[0] + 1
	})(bad)
	good := tr.Compute(func(v ...int) int { return v[0] * 100 })(src)

	src.Set(2)
	assert.Equal(t, 1, bad.Get())
	assert.Equal(t, 2, after.Get())
	assert.Equal(t, 1, afterCount)
	assert.Equal(t, 200, good.Get())

	require.Len(t, log.errs, 1)
	var cerr *tr.ComputationError
	require.ErrorAs(t, log.errs[0], &cerr)
	assert.Equal(t, "bad", cerr.Key)
	assert.Contains(t, cerr.Error(), "cannot handle 2")

	src.Set(1)
	assert.Equal(t, 1, bad.Get())
	assert.Equal(t, 100, good.Get())
}

func TestTypedCompute(t *testing.T) {
	name := tr.New("ada")
	age := tr.New(36)
	label := tr.Compute2(func(n string, a int) string {
		return fmt.Sprintf("%s (%d)", n, a)
	})(name, age)
	assert.Equal(t, "ada (36)", label.Get())

	upper := tr.Compute1(strings.ToUpper)(label)
	assert.Equal(t, "ADA (36)", upper.Get())

	age.Set(37)
	assert.Equal(t, "ADA (37)", upper.Get())

	enabled := tr.New(true)
	scale := tr.New(2.5)
	summary := tr.Compute4(func(n string, a int, e bool, s float64) string {
		if !e {
			return "off"
		}
		return fmt.Sprintf("%s:%d:%.1f", n, a, s)
	})(name, age, enabled, scale)
	assert.Equal(t, "ada:37:2.5", summary.Get())

	enabled.Set(false)
	assert.Equal(t, "off", summary.Get())

	inRange := tr.Compute3(func(lo, v, hi int) bool {
		return lo <= v && v <= hi
	})(tr.New(18), age, tr.New(65))
	assert.True(t, inRange.Get())
	age.Set(70)
	assert.False(t, inRange.Get())

	summary.Dispose()
	enabled.Set(true)
	assert.Equal(t, "off", summary.Get())
}
