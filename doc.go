/*
Package funcore provides pure-function combinators for Go.

# Overview

Funcore is a small library for writing Go in a functional style without
reaching for a framework. Every exported operation is pure: results depend
only on arguments, nothing is mutated, and there are no observable side
effects. The library has four concerns: composing unary functions, currying
and partially applying multi-argument functions, transforming slices
immutably, and building values that cannot be changed after construction.

# Core Concepts

Monoids: the Unary type provides Empty() and Compose() operations:

	f.Empty()      // identity function
	f.Compose(g)   // f after g

Composition: chain transforms in either reading order:

	Compose(f, g, h)(x) // f(g(h(x))) - rightmost applied first
	Pipe(f, g, h)(x)    // h(g(f(x))) - leftmost applied first

Currying: turn multi-argument functions into chains of closures:

	add := func(x, y int) int { return x + y }
	Curry2(add)(2)(3)    // 5
	Partial2(add, 2)(3)  // 5

Each partial application is an independent closure; nothing is shared or
retained between invocations.

Sequences: Map, Filter, and Reduce always return fresh values:

	Map([]int{1, 2, 3}, double) // [2 4 6], input untouched

# Available Types

Composition:
  - Compose, Pipe: variadic unary chaining, right-to-left and left-to-right
  - Comp: two-step composition across different types
  - Unary: named endofunction with Empty, Compose, AndThen, Tap, Times
  - Identity, Const

Currying:
  - Curry2, Curry3 and their inverses Uncurry2, Uncurry3
  - Partial2, Partial3, Flip

Sequences:
  - Map, Filter, Reduce, Each

Recursion:
  - Factorial, FactorialTail (accumulator form, every call in tail position)

Immutability:
  - Frozen: copy-on-write record with Freeze, Get, With, Without, Snapshot

# Quick Example

	chain := funcore.Compose(strings.ToUpper, reverse, hyphenate)
	fmt.Println(chain("chained"))

	cart := []Item{{Price: 9.99}, {Price: 24.50}}
	prices := funcore.Map(cart, func(i Item) float64 { return i.Price })
	total := funcore.Reduce(prices, 0.0, func(sum, p float64) float64 {
		return sum + p
	})

# Package Import

	import "github.com/Pure-Company/funcore"
*/
package funcore
