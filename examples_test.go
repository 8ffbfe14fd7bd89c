package funcore_test

import (
	"fmt"
	"strings"

	"github.com/Pure-Company/funcore"
)

// ============================================================================
// Example 1: Partial application - the adder
// ============================================================================

// Example_adder demonstrates currying a plain two-argument function into a
// family of single-argument adders.
func Example_adder() {
	add := func(x, y int) int { return x + y }
	adder := funcore.Curry2(add)

	addTwo := adder(2)
	addTen := adder(10)

	fmt.Println(addTwo(3))
	fmt.Println(addTen(3))
	fmt.Println(funcore.Identity(1))
	// Output:
	// 5
	// 13
	// 1
}

// ============================================================================
// Example 2: Immutability - moving a point
// ============================================================================

// Point is a small value type used to show pure updates: moving a point
// produces a new point and leaves the original untouched.
type Point struct {
	X, Y int
}

func movePoint(p Point, dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func Example_movePoint() {
	origin := Point{X: 1, Y: 2}
	moved := movePoint(origin, 3, 4)

	fmt.Printf("origin: %+v\n", origin)
	fmt.Printf("moved:  %+v\n", moved)
	// Output:
	// origin: {X:1 Y:2}
	// moved:  {X:4 Y:6}
}

// Example_frozenPoint shows the same update against a frozen record: With
// returns a new record and the original's contents are unchanged.
func Example_frozenPoint() {
	point := funcore.Freeze(map[string]int{"x": 1, "y": 2})
	moved := point.With("x", 4).With("y", 6)

	x, _ := point.Get("x")
	mx, _ := moved.Get("x")
	fmt.Println("original x:", x)
	fmt.Println("moved x:   ", mx)
	// Output:
	// original x: 1
	// moved x:    4
}

// ============================================================================
// Example 3: Composition - the word chain
// ============================================================================

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func hyphenate(s string) string {
	return strings.Join(strings.Split(s, ""), "-")
}

func Example_wordChain() {
	chain := funcore.Compose(strings.ToUpper, reverse, hyphenate)

	fmt.Println(chain("chained"))
	// Output:
	// D-E-N-I-A-H-C
}

// ============================================================================
// Example 4: Mapping pipeline - the shopping cart
// ============================================================================

// Item is a cart line with a price in whole cents.
type Item struct {
	Name  string
	Cents int
}

func Example_cartPipeline() {
	cart := []Item{
		{Name: "coffee", Cents: 450},
		{Name: "beans", Cents: 1200},
		{Name: "grinder", Cents: 6500},
	}

	price := func(i Item) int { return i.Cents }
	discount := func(c int) int { return c * 90 / 100 }

	discounted := funcore.Map(funcore.Map(cart, price), discount)
	total := funcore.Reduce(discounted, 0, func(sum, c int) int { return sum + c })

	fmt.Println(discounted)
	fmt.Println("total:", total)
	// Output:
	// [405 1080 5850]
	// total: 7335
}

// ============================================================================
// Example 5: Tail-recursive factorial
// ============================================================================

func Example_factorial() {
	fmt.Println(funcore.Factorial(5))
	fmt.Println(funcore.FactorialTail(5, 1))
	fmt.Println(funcore.Factorial(0))
	// Output:
	// 120
	// 120
	// 1
}
