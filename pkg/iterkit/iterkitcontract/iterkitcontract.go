// Package iterkitcontract contains the behavioural contract of a restartable lazy sequence.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/rect/pkg/iterkit"
)

// IterSeq returns the contract suite of a finite, restartable iter.Seq.
func IterSeq[T any](mk func(testing.TB) iter.Seq[T]) testcase.Suite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the iterator is finite", func(t *testcase.T) {
		var total int
		for range subject.Get(t) {
			total++
		}
		assert.NotEqual(t, 0, total)
	})

	s.Then("iteration can be restarted, and each traversal yields the same elements", func(t *testcase.T) {
		itr := subject.Get(t)
		first := iterkit.Collect(itr)
		second := iterkit.Collect(itr)
		assert.Equal(t, first, second)
	})

	s.Then("abandoning the traversal early is safe", func(t *testcase.T) {
		itr := subject.Get(t)
		for range itr {
			break
		}
		assert.Equal(t, iterkit.Collect(itr), iterkit.Collect(mk(t)))
	})

	return s.AsSuite("iterator")
}
