package ds

func Repeat[T any](n int, initial T) []T {
	if n <= 0 {
		return []T{}
	}
	ts := make([]T, 0, n)
	for i := 0; i < n; i++ {
		ts = append(ts, initial)
	}
	return ts
}
