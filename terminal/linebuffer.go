// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// Capacity is the number of lines kept by a LineBuffer created with
// NewLineBuffer(0).
const Capacity = 1000

// LineBuffer is a bounded list of lines. When the buffer is full the oldest
// line is evicted to make room for the new one.
//
// Every appended line is given a sequence number, one more than the line
// before it. Sequence numbers are never reused, even after a call to Clear().
type LineBuffer struct {
	ring     []string
	head     int
	count    int
	nextSeq  uint64
	capacity int
}

// NewLineBuffer is the preferred method of initialisation for the LineBuffer
// type. A capacity of zero or less means the default Capacity.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &LineBuffer{
		ring:     make([]string, capacity),
		capacity: capacity,
	}
}

// Len returns the number of lines in the buffer.
func (b *LineBuffer) Len() int {
	return b.count
}

// Cap returns the maximum number of lines the buffer will hold.
func (b *LineBuffer) Cap() int {
	return b.capacity
}

func (b *LineBuffer) index(i int) int {
	return (b.head + i) % b.capacity
}

// Append adds the line to the end of the buffer.
func (b *LineBuffer) Append(line string) {
	if b.count == b.capacity {
		b.ring[b.head] = line
		b.head = (b.head + 1) % b.capacity
	} else {
		b.ring[b.index(b.count)] = line
		b.count++
	}
	b.nextSeq++
}

// ReplaceLast overwrites the most recently appended line. Does nothing if the
// buffer is empty.
func (b *LineBuffer) ReplaceLast(line string) {
	if b.count == 0 {
		return
	}
	b.ring[b.index(b.count-1)] = line
}

// LastSeq returns the sequence number of the last line in the buffer. The
// boolean is false if the buffer is empty.
func (b *LineBuffer) LastSeq() (uint64, bool) {
	if b.count == 0 {
		return 0, false
	}
	return b.nextSeq - 1, true
}

// ReplaceSeq overwrites the line with the sequence number. Returns false if
// the line is no longer in the buffer.
func (b *LineBuffer) ReplaceSeq(seq uint64, line string) bool {
	first := b.nextSeq - uint64(b.count)
	if seq < first || seq >= b.nextSeq {
		return false
	}
	b.ring[b.index(int(seq-first))] = line
	return true
}

// Clear removes all lines from the buffer.
func (b *LineBuffer) Clear() {
	clear(b.ring)
	b.head = 0
	b.count = 0
}

// Line returns the line at index i, counting from the oldest line. An empty
// string is returned if the index is out of range.
func (b *LineBuffer) Line(i int) string {
	if i < 0 || i >= b.count {
		return ""
	}
	return b.ring[b.index(i)]
}

// Slice returns a copy of the lines in the range [start, end). The start
// index is clamped to the number of lines and the end index is clamped to
// the range [start, Len()].
func (b *LineBuffer) Slice(start int, end int) []string {
	start = min(max(start, 0), b.count)
	end = min(max(end, start), b.count)

	s := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		s = append(s, b.ring[b.index(i)])
	}
	return s
}
