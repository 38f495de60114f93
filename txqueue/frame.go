// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txqueue

import (
	"fmt"
	"time"
)

// MaximumDataLength - classic CAN payload limit
const MaximumDataLength = 8

// Frame - one CAN data frame, owned by the caller
//
// the queue never copies a frame; the caller must keep it alive while
// it is queued and must not push the same instance twice
type Frame struct {
	ID       uint32                  // 29 bit extended identifier
	Length   uint8                   // number of valid bytes in Data
	Data     [MaximumDataLength]byte // payload
	Deadline time.Time               // drop if not sent by this time, zero means never
}

// Compare - arbitration order for the backing index
//
// a lower identifier wins the bus, so it compares greater and Max
// always yields the next frame to transmit; equal identifiers are
// key-equal and queue FIFO on one node
func (f *Frame) Compare(x interface{}) int {
	q := x.(*Frame)
	switch {
	case f.ID < q.ID:
		return +1
	case f.ID > q.ID:
		return -1
	default:
		return 0
	}
}

// Expired - true when the frame's deadline has passed
//
// a zero deadline never expires
func (f *Frame) Expired(now time.Time) bool {
	return !f.Deadline.IsZero() && f.Deadline.Before(now)
}

// String - short form for diagnostics
func (f *Frame) String() string {
	return fmt.Sprintf("%08x[%d]", f.ID, f.Length)
}
