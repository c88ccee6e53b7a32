package funcs_test

import (
	"fmt"
	"time"

	"github.com/iam-peekay/underbar/funcs"
	"github.com/iam-peekay/underbar/sched"
)

func ExampleOnce() {
	setup := funcs.Once(func() string {
		fmt.Println("initializing")
		return "ready"
	})
	fmt.Println(setup())
	fmt.Println(setup())
	// Output:
	// initializing
	// ready
	// ready
}

func ExampleMemoize() {
	square := funcs.Memoize(func(n int) int {
		fmt.Printf("computing %d²\n", n)
		return n * n
	})
	fmt.Println(square(4))
	fmt.Println(square(4))
	// Output:
	// computing 4²
	// 16
	// 16
}

func ExampleThrottle() {
	clock := sched.NewFake()
	ping := funcs.Throttle(func() string {
		fmt.Println("ping!")
		return "pong"
	}, 100*time.Millisecond, funcs.WithClock(clock))

	ping()
	ping() // throttled: cached result, no second ping
	clock.Advance(100 * time.Millisecond)
	ping()
	// Output:
	// ping!
	// ping!
}

func ExampleDelay() {
	clock := sched.NewFake()
	funcs.Delay1(func(msg string) { fmt.Println(msg) },
		50*time.Millisecond, "later", funcs.WithClock(clock))

	fmt.Println("now")
	clock.Advance(50 * time.Millisecond)
	// Output:
	// now
	// later
}

func ExampleCompose() {
	exclaim := func(s string) string { return s + "!" }
	greet := func(name string) string { return "hello " + name }
	loudGreet := funcs.Compose(exclaim, greet)
	fmt.Println(loudGreet("moe"))
	// Output: hello moe!
}
