package generators_test

import (
	"github.com/QPC-github/secmgr/internal/generators"
)

func (suite *Suite) TestCrossOrder() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of("a0", "a1"),
		generators.Of("b0", "b1", "b2"),
	)
	r.NoError(err)

	combinations := generators.Collect(g)
	r.Equal(2*3, len(combinations))
	r.Equal([]string{"a0", "b0"}, combinations[0])
	r.Equal([]string{"a0", "b1"}, combinations[1])
	r.Equal([]string{"a0", "b2"}, combinations[2])
	r.Equal([]string{"a1", "b0"}, combinations[3])
	r.Equal([]string{"a1", "b1"}, combinations[4])
	r.Equal([]string{"a1", "b2"}, combinations[5])
}

func (suite *Suite) TestCrossThreeFactors() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of("1", "2", "3"),
		generators.Of("a", "b", "c"),
		generators.Of("A", "B"),
	)
	r.NoError(err)

	combinations := generators.Collect(g)
	r.Equal(3*3*2, len(combinations))
	r.Equal([]string{"1", "a", "A"}, combinations[0])
	r.Equal([]string{"1", "a", "B"}, combinations[1])
	r.Equal([]string{"1", "b", "A"}, combinations[2])
	r.Equal([]string{"2", "a", "A"}, combinations[6])
	r.Equal([]string{"3", "c", "B"}, combinations[17])
}

func (suite *Suite) TestCrossNoFactors() {
	r := suite.Require()

	g, err := generators.Cross[string]()
	r.NoError(err)
	// Zero factors yield the empty sequence, not one empty tuple.
	r.False(g.Iterator().HasNext())
	r.Equal(0, generators.Count(g))
}

func (suite *Suite) TestCrossEmptyFactor() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of("1", "2"),
		generators.Empty[string](),
		generators.Of("a", "b"),
	)
	r.NoError(err)

	it := g.Iterator()
	r.False(it.HasNext())
	for item := range generators.All(g) {
		r.Fail("Got item: %s", item)
	}
}

func (suite *Suite) TestCrossSingleFactor() {
	r := suite.Require()

	g, err := generators.Cross(generators.Of(4, 8, 15))
	r.NoError(err)

	combinations := generators.Collect(g)
	r.Equal(3, len(combinations))
	r.Equal([]int{4}, combinations[0])
	r.Equal([]int{8}, combinations[1])
	r.Equal([]int{15}, combinations[2])
}

func (suite *Suite) TestCrossNilFactor() {
	r := suite.Require()

	g, err := generators.Cross(generators.Of(1), nil, generators.Of(3))
	r.ErrorIs(err, generators.ErrNilGenerator)
	r.Nil(g)
}

func (suite *Suite) TestCrossPeekNext() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of("x", "y"),
		generators.Of("0", "1"),
	)
	r.NoError(err)

	it := g.Iterator()
	for it.HasNext() {
		peeked := it.Peek()
		// Peek is repeatable and never advances.
		r.Equal(peeked, it.Peek())
		r.Equal(peeked, it.Peek())
		r.Equal(peeked, it.Next())
	}
}

func (suite *Suite) TestCrossNextWithoutPeek() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of("x", "y"),
		generators.Of("0", "1"),
	)
	r.NoError(err)

	it := g.Iterator()
	r.Equal([]string{"x", "0"}, it.Next())
	r.Equal([]string{"x", "1"}, it.Next())
	r.Equal([]string{"y", "0"}, it.Next())
	r.Equal([]string{"y", "1"}, it.Next())
	r.False(it.HasNext())
}

func (suite *Suite) TestCrossRestart() {
	r := suite.Require()

	g, err := generators.Cross(
		generators.Of(1, 3),
		generators.Of(2, 4),
	)
	r.NoError(err)

	first := generators.Collect(g)
	second := generators.Collect(g)
	r.Equal(2*2, len(first))
	r.Equal(first, second)

	// Two live iterators do not interfere.
	a := g.Iterator()
	b := g.Iterator()
	r.Equal([]int{1, 2}, a.Next())
	r.Equal([]int{1, 2}, b.Next())
	r.Equal([]int{1, 4}, a.Next())
	r.Equal([]int{1, 2}, b.Peek())
}

func (suite *Suite) TestCrossExhaustion() {
	r := suite.Require()

	g, err := generators.Cross(generators.Of("only"))
	r.NoError(err)

	it := g.Iterator()
	r.True(it.HasNext())
	it.Next()
	r.False(it.HasNext())
	r.False(it.HasNext())
	r.False(it.HasNext())
}

type dumbStruct struct {
	A string
}

func (suite *Suite) TestCrossAny() {
	r := suite.Require()

	s0 := dumbStruct{A: "s0"}
	s1 := dumbStruct{A: "s1"}
	g, err := generators.Cross(
		generators.Of[any]("1", "2", "3"),
		generators.Of[any](s0, s1),
	)
	r.NoError(err)

	combinations := generators.Collect(g)
	r.Equal(3*2, len(combinations))
	r.Equal([]any{"1", s0}, combinations[0])
	r.Equal([]any{"1", s1}, combinations[1])
	r.Equal([]any{"2", s0}, combinations[2])
	r.Equal([]any{"3", s1}, combinations[5])
}

func (suite *Suite) TestCrossComposes() {
	r := suite.Require()

	inner, err := generators.Cross(
		generators.Of[any]("a", "b"),
		generators.Of[any](0, 1),
	)
	r.NoError(err)

	// A cross product is a generator like any other factor.
	var pairs []any
	for _, pair := range generators.Collect(inner) {
		pairs = append(pairs, pair)
	}
	outer, err := generators.Cross(
		generators.Of[any]("x"),
		generators.Of(pairs...),
	)
	r.NoError(err)

	combinations := generators.Collect(outer)
	r.Equal(1*4, len(combinations))
	r.Equal([]any{"x", []any{"a", 0}}, combinations[0])
	r.Equal([]any{"x", []any{"b", 1}}, combinations[3])
}
