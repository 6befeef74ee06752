package main

import (
	"log"

	"github.com/cschleiden/go-futures/dispatch"
	"github.com/cschleiden/go-futures/future"
	"github.com/cschleiden/go-futures/samples"
	"github.com/google/uuid"
)

type Event struct {
	ID   string
	Seq  int
	Kind string
}

func main() {
	d := samples.NewDispatcher("stream")

	events := future.NewStream[Event](d, future.WithName("events"))

	// Producer: a few writes spread over dispatcher turns, then close.
	for i := 1; i <= 5; i++ {
		seq := i

		d.Defer(func() {
			events.Write(Event{
				ID:   uuid.NewString(),
				Seq:  seq,
				Kind: "order.updated",
			})

			if seq == 5 {
				events.Close()
			}
		})
	}

	// Consumer: read until the stream reports the end.
	done := future.New[future.Void](d, future.WithName("consumer"))

	var consume func()
	consume = func() {
		item := events.Read()
		item.OnComplete(func() {
			ev, err := item.Read()
			if err != nil {
				done.Fail(err)
				return
			}

			if !ev.Valid {
				log.Println("Stream closed, consumer done")
				done.Complete(future.Void{})
				return
			}

			log.Println("Received event", ev.Value.Seq, ev.Value.Kind, ev.Value.ID)
			consume()
		})
	}
	consume()

	if _, err := dispatch.Await(d, done); err != nil {
		panic("could not drain stream: " + err.Error())
	}
}
