package triangles

import "sync"

// task splits data into workersCount contiguous chunks and calls fn on
// every element, one goroutine per chunk. fn receives the element's index
// so results can be written to disjoint slots without locking.
func task[T any](workersCount int, data []T, fn func(i int, item T)) {
	if workersCount <= 1 || len(data) <= 1 {
		for i, item := range data {
			fn(i, item)
		}
		return
	}

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for start := 0; start < dataSize; start += chunkSize {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, min(start+chunkSize, dataSize))
	}
	wg.Wait()
}
