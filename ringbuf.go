package ringbuf

// RingBuffer is a fixed-capacity, single-producer single-consumer circular
// buffer holding elements of type T.
//
// The read and write cursors increase monotonically over the full uint64
// range, wrapping on overflow, and are reduced modulo the capacity only when
// indexing the backing store. Their wrapping difference is the number of
// stored-but-unread elements, which stays correct across cursor overflow.
//
// A RingBuffer performs no locking. Sharing an instance between goroutines
// requires external synchronization.
type RingBuffer[T any] struct {
	data     []T
	capacity uint64
	readIdx  uint64
	writeIdx uint64
}

// New returns an empty buffer that holds up to capacity elements.
// It panics if capacity is not positive.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	return &RingBuffer[T]{
		data:     make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Write stores v and advances the write cursor without checking for free
// space. Writing to a full buffer silently overwrites the oldest unread
// element and leaves Len reporting more than Cap. Callers that cannot
// guarantee headroom must use WriteChecked.
func (r *RingBuffer[T]) Write(v T) {
	r.data[r.writeIdx%r.capacity] = v
	r.writeIdx++
}

// WriteChecked stores v only if the buffer has room. It returns false and
// leaves the buffer untouched when the buffer is full.
func (r *RingBuffer[T]) WriteChecked(v T) bool {
	if r.Full() {
		return false
	}
	r.Write(v)
	return true
}

// Read returns the oldest unread element and advances the read cursor
// without checking that one is pending. Reading an empty buffer returns
// whatever zero or stale value occupies the slot and still advances the
// cursor. Callers that cannot guarantee occupancy must use ReadChecked.
func (r *RingBuffer[T]) Read() T {
	v := r.data[r.readIdx%r.capacity]
	r.readIdx++
	return v
}

// ReadChecked returns the oldest unread element and true, or the zero value
// and false if the buffer is empty. The empty case does not move the read
// cursor.
func (r *RingBuffer[T]) ReadChecked() (T, bool) {
	if !r.ReadyToRead() {
		var zero T
		return zero, false
	}
	return r.Read(), true
}

// Peek returns the element the next Read would return without advancing the
// read cursor. The stale-value hazard of Read applies when the buffer is
// empty.
func (r *RingBuffer[T]) Peek() T {
	return r.data[r.readIdx%r.capacity]
}

// ReadyToRead reports whether at least one unread element is pending. The
// cursors are compared at full width, so the answer stays correct when they
// wrap around.
func (r *RingBuffer[T]) ReadyToRead() bool {
	return r.readIdx != r.writeIdx
}

// Len returns the number of stored-but-unread elements. The wrapping
// subtraction yields the correct count even after the cursors overflow.
func (r *RingBuffer[T]) Len() int {
	return int(r.writeIdx - r.readIdx)
}

// Cap returns the fixed capacity supplied to New.
func (r *RingBuffer[T]) Cap() int {
	return int(r.capacity)
}

// Full reports whether the next unchecked Write would overwrite unread data.
func (r *RingBuffer[T]) Full() bool {
	return r.writeIdx-r.readIdx == r.capacity
}

// Clear resets both cursors, discarding any unread elements. The backing
// slots are not zeroed, so an unchecked Read after Clear can observe
// previously written values.
func (r *RingBuffer[T]) Clear() {
	r.readIdx = 0
	r.writeIdx = 0
}

// ClearZero resets the cursors like Clear and additionally zeroes every
// slot, so stale elements cannot be observed afterwards and references held
// by pointerful element types are released.
func (r *RingBuffer[T]) ClearZero() {
	r.Clear()
	clear(r.data)
}
