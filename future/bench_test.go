package future

import "testing"

func Benchmark_CompleteAndRead(b *testing.B) {
	s := &testScheduler{}

	for i := 0; i < b.N; i++ {
		f := New[int](s)
		f.Complete(i)
		_, _ = f.Read()
	}
}

func Benchmark_VarReuse(b *testing.B) {
	s := &testScheduler{}
	v := NewVar[int](s)

	for i := 0; i < b.N; i++ {
		v.Complete(i)
		_, _ = v.Read()
		v.Reset()
	}
}

func Benchmark_StreamWriteRead(b *testing.B) {
	s := &testScheduler{}
	st := NewStream[int](s)

	for i := 0; i < b.N; i++ {
		st.Write(i)
		rf := st.Read()
		s.run()
		_, _ = rf.Read()
	}
}
