package p

// Work around module issues. The analyzer just looks for the registration
// method names currently
import (
	"fmt"
)

type future struct{}

func (f *future) OnComplete(fn func()) {}

type stream struct{}

func (s *stream) OnData(fn func()) {}

type dispatcher struct{}

func (d *dispatcher) Defer(fn func()) {}

func plainContinuation(f *future) {
	f.OnComplete(func() {
		fmt.Println("done")
	})
}

func usesGoRoutine(f *future) {
	f.OnComplete(func() {
		go func() { // want "use Defer instead of `go` in continuations"
			fmt.Println("hello")
		}()
	})
}

func sendsOnChannel(f *future, ch chan int) {
	f.OnComplete(func() {
		ch <- 1 // want "blocking channel send is not allowed in continuations"
	})
}

func receivesFromChannel(s *stream, ch chan int) {
	s.OnData(func() {
		v := <-ch // want "blocking channel receive is not allowed in continuations"
		fmt.Println(v)
	})
}

func selectsWithoutDefault(d *dispatcher, a chan int, b chan int) {
	d.Defer(func() {
		select { // want "blocking select is not allowed in continuations"
		case <-a:
		case <-b:
		}
	})
}

func selectsWithDefault(d *dispatcher, a chan int) {
	d.Defer(func() {
		select {
		case <-a:
		default:
		}
	})
}

func rangesOverChannel(f *future, ch chan int) {
	f.OnComplete(func() {
		for v := range ch { // want "ranging over a channel is not allowed in continuations"
			fmt.Println(v)
		}
	})
}

func rangesOverSlice(f *future, xs []int) {
	f.OnComplete(func() {
		for _, v := range xs {
			fmt.Println(v)
		}
	})
}

func blocksOutsideContinuation(ch chan int) {
	<-ch
}
