package main

import (
	"log"
	"time"

	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/samples"
)

func main() {
	d := samples.NewDispatcher("combinators")

	// All: fan out three lookups and collect the results in input order.
	prices := future.All(d,
		fetchPrice(d, "EUR", 20*time.Millisecond),
		fetchPrice(d, "USD", 5*time.Millisecond),
		fetchPrice(d, "GBP", 10*time.Millisecond),
	)

	if v, err := dispatch.Await(d, prices); err == nil {
		log.Println("All prices:", v)
	} else {
		panic("could not fetch prices: " + err.Error())
	}

	// Or: first responder wins.
	first := future.Or(
		fetchPrice(d, "slow", 50*time.Millisecond),
		fetchPrice(d, "fast", 5*time.Millisecond),
	)

	if _, err := dispatch.Await(d, first); err == nil {
		log.Println("One price source responded")
	} else {
		panic("no price source responded: " + err.Error())
	}

	// And: wait for two unrelated completions.
	both := future.And(
		fetchPrice(d, "EUR", 5*time.Millisecond),
		d.Delay(10*time.Millisecond),
	)

	if _, err := dispatch.Await(d, both); err == nil {
		log.Println("Price fetched and timer fired")
	} else {
		panic("combined wait failed: " + err.Error())
	}
}

// fetchPrice simulates a price lookup that responds after the given latency.
func fetchPrice(d *dispatch.Dispatcher, symbol string, latency time.Duration) *future.Future[float64] {
	f := future.New[float64](d, future.WithName("fetchPrice."+symbol))

	d.Delay(latency).OnComplete(func() {
		f.Complete(float64(len(symbol)) * 1.5)
	})

	return f
}
