package aliasmap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	// 1 << 8,
	1 << 12,
	1 << 16,
}

func BenchmarkMapGet(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := make(map[int]int, size)
				for i := range size {
					m[i] = i
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = m[i%size]
				}
			})
		}
	})

	b.Run("variant=aliasMap", func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				m := New(WithCapacity[int, int](size))
				for i := range size {
					m.Insert(i, i)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = m.Get(i % size)
				}
			})
		}
	})
}

func BenchmarkMapRefCount(b *testing.B) {
	bench := func(opts ...Option[int, int]) func(b *testing.B) {
		return func(b *testing.B) {
			for _, size := range sizes {
				b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
					m := New(append(opts, WithCapacity[int, int](size))...)
					for i := range size {
						m.Insert(i, i)
					}

					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = m.RefCount(i % size)
					}
				})
			}
		}
	}

	b.Run("variant=scan", bench())
	b.Run("variant=reverse", bench(WithReverseIndex[int, int]()))
}

func BenchmarkMapRemoveAlias(b *testing.B) {
	bench := func(opts ...Option[int, int]) func(b *testing.B) {
		return func(b *testing.B) {
			for _, size := range sizes {
				b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
					m := New(append(opts, WithCapacity[int, int](size))...)
					for i := range size {
						m.Insert(i, i)
						m.InsertAlias(i, i+size)
					}

					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						k := i % size
						m.RemoveAlias(k + size)
						m.InsertAlias(k, k+size)
					}
				})
			}
		}
	}

	b.Run("variant=scan", bench())
	b.Run("variant=reverse", bench(WithReverseIndex[int, int]()))
}
