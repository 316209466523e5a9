package model

// Capacity is the number of children a frame, stick or hundred holds
const Capacity = 10

// Canonicalize packs items into frames of capacity, preserving order
// Every frame but the last is full; an empty input yields one empty frame
func Canonicalize[T any](items []T, capacity int) [][]T {
	if capacity <= 0 {
		capacity = Capacity
	}

	frames := make([][]T, 0, len(items)/capacity+1)
	for start := 0; start < len(items); start += capacity {
		end := min(start+capacity, len(items))
		frame := make([]T, end-start)
		copy(frame, items[start:end])
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		frames = append(frames, []T{})
	}
	return frames
}

// Flatten concatenates frames back into one ordered sequence
func Flatten[T any](frames [][]T) []T {
	n := 0
	for _, f := range frames {
		n += len(f)
	}
	out := make([]T, 0, n)
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

// frameBounds returns the [start, end) slice range of frame index within n packed items
func frameBounds(n, index int) (start, end int, ok bool) {
	if index < 0 {
		return 0, 0, false
	}
	start = index * Capacity
	if start >= n {
		return 0, 0, false
	}
	return start, min(start+Capacity, n), true
}
