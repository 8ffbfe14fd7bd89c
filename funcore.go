// Package funcore provides pure-function combinators for Go.
//
// Every exported operation is pure: output depends only on inputs, no
// observable side effects, and arguments are never mutated. The package
// covers function composition, currying and partial application, immutable
// slice transformation, accumulator-style recursion, and copy-on-write
// frozen records.
//
// # Quick Start
//
// Compose unary transforms right-to-left, the mathematical convention:
//
//	chain := funcore.Compose(strings.ToUpper, reverse, hyphenate)
//	chain("chained") // hyphenate first, ToUpper last
//
// Or left-to-right when a pipeline reads better:
//
//	chain := funcore.Pipe(hyphenate, reverse, strings.ToUpper)
//
// Curry a two-argument function into a chain of closures:
//
//	add := func(x, y int) int { return x + y }
//	addTwo := funcore.Curry2(add)(2)
//	addTwo(3) // 5
//
// Transform a slice without touching the original:
//
//	doubled := funcore.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
package funcore

// ============================================================================
// Composition
// ============================================================================

// Identity returns its argument unchanged. It is the left and right identity
// of Comp and the value returned by Compose and Pipe when given no functions.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and always returns a.
// Useful for plugging a fixed value into a slot that expects a function.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Comp is left-to-right composition of two functions that may change type.
// Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose chains unary functions right-to-left into a single function:
// Compose(f1, f2, f3)(x) == f1(f2(f3(x))). With no arguments it returns the
// identity function. No element function is called until the result is
// applied; each application calls every element exactly once.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe is the left-to-right dual of Compose:
// Pipe(f1, f2, f3)(x) == f3(f2(f1(x))).
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Unary is a named unary endofunction with composition methods.
// It carries the package's monoid pattern: Empty is the identity element and
// Compose the associative operation.
//
// Example:
//
//	normalize := Unary[string](strings.TrimSpace).
//		AndThen(strings.ToLower).
//		Tap(func(s string) { log.Println("normalized:", s) })
type Unary[T any] func(T) T

// Empty returns the identity function (Monoid identity).
func (f Unary[T]) Empty() Unary[T] {
	return func(v T) T { return v }
}

// Compose applies next first, then f (Monoid operation, right-to-left):
// f.Compose(g)(x) == f(g(x)).
func (f Unary[T]) Compose(next Unary[T]) Unary[T] {
	return func(v T) T {
		return f(next(v))
	}
}

// AndThen applies f first, then next (left-to-right):
// f.AndThen(g)(x) == g(f(x)).
func (f Unary[T]) AndThen(next Unary[T]) Unary[T] {
	return func(v T) T {
		return next(f(v))
	}
}

// Tap allows side effects on the intermediate value without modifying it.
func (f Unary[T]) Tap(fn func(T)) Unary[T] {
	return func(v T) T {
		out := f(v)
		fn(out)
		return out
	}
}

// Times composes f with itself n times. Times(0) is the identity function.
func (f Unary[T]) Times(n int) Unary[T] {
	return func(v T) T {
		for i := 0; i < n; i++ {
			v = f(v)
		}
		return v
	}
}

// ============================================================================
// Currying & Partial Application
// ============================================================================

// Curry2 transforms a two-argument function into a chain of single-argument
// functions: Curry2(f)(a)(b) == f(a, b). Each intermediate closure is
// independent; applying it retains no state across invocations.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 transforms a three-argument function into a chain of
// single-argument functions: Curry3(f)(a)(b)(c) == f(a, b, c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Partial2 fixes the first argument of a two-argument function.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of a three-argument function, returning
// a function awaiting the remaining two.
func Partial3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Flip swaps the argument order of a two-argument function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// ============================================================================
// Sequences
// ============================================================================

// Map applies f to every element of s and returns a fresh slice of the
// results. The output has the same length as the input and s is never
// mutated. A nil input yields an empty, non-nil output.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns a fresh slice holding the elements of s for which keep
// returns true, in their original order. s is never mutated.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value left-to-right, starting from init.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Each calls fn for every element of s in order. It is the package's one
// deliberately effectful helper; fn is expected to perform side effects.
func Each[T any](s []T, fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// ============================================================================
// Recursion
// ============================================================================

// Factorial returns n! by plain recursion. Factorial(0) == 1. Inputs below
// zero also return 1; the operation is undefined there and this pins a total
// behavior rather than recursing without bound.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// FactorialTail returns n! * acc using an accumulator threaded through the
// recursion so that every recursive call is in tail position. Call it with
// acc == 1 to compute n!. The Go runtime does not promise tail-call
// elimination, so constant stack use is a property of the shape, not a
// guarantee. Inputs below zero return acc, matching Factorial's convention.
func FactorialTail(n, acc int) int {
	if n <= 1 {
		return acc
	}
	return FactorialTail(n-1, n*acc)
}

// ============================================================================
// Frozen Records
// ============================================================================

// Frozen is an immutable map-like record. All transforming methods return a
// new record; the receiver's observable contents never change, so Frozen
// values are safe to share without locking.
//
// Example:
//
//	base := Freeze(map[string]int{"x": 1, "y": 2})
//	moved := base.With("x", 4)
//	base.Get("x") // still 1, true
type Frozen[K comparable, V any] struct {
	entries map[K]V
}

// Freeze copies m into a new frozen record. Later mutation of m does not
// affect the record.
func Freeze[K comparable, V any](m map[K]V) Frozen[K, V] {
	entries := make(map[K]V, len(m))
	for k, v := range m {
		entries[k] = v
	}
	return Frozen[K, V]{entries: entries}
}

// Get returns the value stored under k and whether it is present.
func (f Frozen[K, V]) Get(k K) (V, bool) {
	v, ok := f.entries[k]
	return v, ok
}

// Len returns the number of entries in the record.
func (f Frozen[K, V]) Len() int {
	return len(f.entries)
}

// With returns a new record with k set to v. The receiver is unchanged.
func (f Frozen[K, V]) With(k K, v V) Frozen[K, V] {
	entries := make(map[K]V, len(f.entries)+1)
	for key, val := range f.entries {
		entries[key] = val
	}
	entries[k] = v
	return Frozen[K, V]{entries: entries}
}

// Without returns a new record with k removed. The receiver is unchanged.
func (f Frozen[K, V]) Without(k K) Frozen[K, V] {
	entries := make(map[K]V, len(f.entries))
	for key, val := range f.entries {
		if key != k {
			entries[key] = val
		}
	}
	return Frozen[K, V]{entries: entries}
}

// Snapshot returns a copy of the record's contents as a plain map. The
// caller may mutate the copy freely without affecting the record.
func (f Frozen[K, V]) Snapshot() map[K]V {
	out := make(map[K]V, len(f.entries))
	for k, v := range f.entries {
		out[k] = v
	}
	return out
}
