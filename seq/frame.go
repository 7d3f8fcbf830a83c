package seq

import "fmt"

// Frame identifies the translation context of a query: frames 0-2 are the
// forward strand at offsets 0, 1, 2 and frames 3-5 the reverse strand.
type Frame uint8

// NumFrames is the number of distinct translation frames.
const NumFrames = 6

// NewFrame builds a Frame from strand and reading offset.
func NewFrame(reverse bool, offset int) Frame {
	f := Frame(offset % 3)
	if reverse {
		f += 3
	}
	return f
}

// Reverse reports whether the frame is on the reverse strand.
func (f Frame) Reverse() bool { return f >= 3 }

// Offset returns the reading offset within the strand (0, 1 or 2).
func (f Frame) Offset() int { return int(f % 3) }

// String formats the frame in the signed notation used by BLAST-like output
// (+1..+3, -1..-3).
func (f Frame) String() string {
	if f.Reverse() {
		return fmt.Sprintf("-%d", f.Offset()+1)
	}
	return fmt.Sprintf("+%d", f.Offset()+1)
}
