// Package concepts walks through language fundamentals: variable rebinding
// and block scoping, expression-style assignment, labeled loops, a recursive
// fibonacci and a cumulative carol. Each walkthrough writes illustrative
// output to the given writer and returns.
package concepts

import (
	"fmt"
	"io"
)

// Variables demonstrates rebinding and block-scoped shadowing.
func Variables(w io.Writer) {
	x := 5
	fmt.Fprintf(w, "The value of x is: %d\n", x)

	x = x + 1
	fmt.Fprintf(w, "The value of x after rebinding is: %d\n", x)

	{
		x := x * 2 // shadows the outer x inside this block
		fmt.Fprintf(w, "The value of the inner x is: %d\n", x)
	}
	fmt.Fprintf(w, "The value of x after the block is: %d\n", x)

	// A function literal invoked in place gives an expression-style
	// assignment.
	b := func() int {
		a := 5
		return a + 2
	}()
	fmt.Fprintf(w, "What is b? %d\n", b)

	five := five()
	fmt.Fprintf(w, "five is %d\n", five)
	fmt.Fprintf(w, "Is %d a positive number? %t\n", five, positive(five))
	fmt.Fprintf(w, "Is -1 a positive number? %t\n", positive(-1))
}

func five() int {
	return 5
}

func positive(x int) bool {
	return x >= 0
}

// CountUp demonstrates a labeled outer loop broken from within the inner
// loop. It prints the remaining values visited and returns the final count.
func CountUp(w io.Writer) int {
	count := 0

countingUp:
	for {
		remaining := 10

		for {
			fmt.Fprintf(w, "remaining = %d\n", remaining)

			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}

		count++
	}

	fmt.Fprintf(w, "\nEnd count = %d\n", count)
	return count
}

// Fibonacci returns the nth fibonacci number using the naive recursive
// definition. Non-positive n yields 0.
func Fibonacci(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 || n == 2 {
		return 1
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// TwelveDays prints the cumulative twelve-days carol: each verse repeats
// the gifts of every prior day before the partridge line.
func TwelveDays(w io.Writer) {
	for day := 1; day <= 12; day++ {
		fmt.Fprintf(w, "On day %d of Christmas, my true love gave to me...\n", day)

		for gift := day; gift > 1; gift-- {
			fmt.Fprintf(w, "%d items of blank\n", gift)
		}

		if day == 1 {
			fmt.Fprintln(w, "A partridge in a pear tree!")
		} else {
			fmt.Fprintln(w, "And a partridge in a pear tree!")
		}
	}
}
