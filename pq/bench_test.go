package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathlab/pq"
)

func BenchmarkQueue_PushPop(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	prios := make([]float64, 1024)
	for i := range prios {
		prios[i] = r.Float64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pq.NewWithCapacity[int](len(prios))
		for j, p := range prios {
			q.Push(j, p)
		}
		for !q.IsEmpty() {
			q.Pop()
		}
	}
}
