package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/samples"
	"github.com/google/uuid"
)

func main() {
	d := samples.NewDispatcher("simple")

	order := lookupOrder(d, uuid.NewString())

	greeting := future.New[string](d, future.WithName("greeting"))
	order.OnComplete(func() {
		o, err := order.Read()
		if err != nil {
			greeting.Fail(err)
			return
		}

		greeting.Complete(fmt.Sprintf("Hello %s, your order is %s", strings.ToUpper(o.Customer), o.Status))
	})

	result, err := dispatch.Await(d, greeting)
	if err != nil {
		panic("could not complete greeting: " + err.Error())
	}

	log.Println(result)
}

type Order struct {
	ID       string
	Customer string
	Status   string
}

// lookupOrder pretends to fetch an order. The result arrives on a later
// dispatcher turn, like a response handed over by an I/O goroutine.
func lookupOrder(d *dispatch.Dispatcher, id string) *future.Future[Order] {
	f := future.New[Order](d, future.WithName("lookupOrder"))

	d.Defer(func() {
		f.Complete(Order{
			ID:       id,
			Customer: "world",
			Status:   "shipped",
		})
	})

	return f
}
