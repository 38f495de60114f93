// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txqueue

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/quietbay/ordpool/avl"
	"github.com/quietbay/ordpool/counter"
	"github.com/quietbay/ordpool/fault"
)

// Queue - deadline-aware transmit queue
type Queue struct {
	tree *avl.Tree
	pool *avl.Pool
	log  *logger.L
	now  func() time.Time

	// statistics
	pushed   counter.Counter
	expired  counter.Counter
	rejected counter.Counter
}

// Statistics - counters and gauges for diagnostics
type Statistics struct {
	Pushed     uint64 // frames accepted by Push
	Expired    uint64 // frames dropped because their deadline passed
	Rejected   uint64 // pushes refused outright
	Queued     int    // frames currently waiting
	BlocksUsed int    // pool blocks consumed by the backing index
}

// New - create a queue drawing its blocks from pool
//
// the pool capacity bounds the number of frames that can wait at
// once; a nil clock selects time.Now
func New(pool *avl.Pool, log *logger.L, clock func() time.Time) *Queue {
	if nil == clock {
		clock = time.Now
	}
	return &Queue{
		tree: avl.NewWithHint(pool, pool.Capacity()),
		pool: pool,
		log:  log,
		now:  clock,
	}
}

// Push - queue a frame for transmission
//
// an already expired frame is refused; on pool exhaustion expired
// frames are purged and the insert retried once before the push is
// rejected with fault.ErrPoolExhausted
func (q *Queue) Push(f *Frame) error {
	if nil == f {
		return fault.ErrInvalidFrame
	}
	if MaximumDataLength < f.Length {
		q.rejected.Increment()
		return fault.ErrFrameDataTooLong
	}

	now := q.now()
	if f.Expired(now) {
		q.expired.Increment()
		q.rejected.Increment()
		q.log.Warnf("push refused, already expired: %s", f)
		return fault.ErrFrameExpired
	}

	err := q.tree.Insert(f)
	if fault.ErrPoolExhausted == err {
		if 0 != q.purgeExpired(now) {
			err = q.tree.Insert(f)
		}
	}
	if nil != err {
		q.rejected.Increment()
		q.log.Warnf("push rejected: %s: %s", f, err)
		return err
	}

	q.pushed.Increment()
	q.log.Debugf("push: %s deadline: %v", f, f.Deadline)
	return nil
}

// Peek - the frame that would transmit next, nil when the queue is
// empty
//
// equal identifiers come out oldest first
func (q *Queue) Peek() *Frame {
	item := q.tree.Max()
	if nil == item {
		return nil
	}
	return item.(*Frame)
}

// Pop - remove and return the next frame to transmit, nil when empty
func (q *Queue) Pop() *Frame {
	f := q.Peek()
	if nil != f {
		q.tree.Remove(f)
		q.log.Debugf("pop: %s", f)
	}
	return f
}

// Remove - drop one specific frame
//
// a frame that is not queued is a silent no-op; returns true when the
// frame was dropped
func (q *Queue) Remove(f *Frame) bool {
	return q.tree.Remove(f)
}

// Contains - true iff this frame instance is currently queued
func (q *Queue) Contains(f *Frame) bool {
	return q.tree.Contains(f)
}

// PurgeExpired - drop every queued frame whose deadline has passed
//
// returns the number of frames dropped
func (q *Queue) PurgeExpired() int {
	return q.purgeExpired(q.now())
}

// internal purge
//
// only primaries are visible to iteration; removing an expired
// primary promotes the next queued frame, so rescan until a pass
// finds nothing
func (q *Queue) purgeExpired(now time.Time) int {
	total := 0
	for {
		var stale []*Frame
		for node := q.tree.First(); nil != node; node = node.Next() {
			f := node.Item().(*Frame)
			if f.Expired(now) {
				stale = append(stale, f)
			}
		}
		if 0 == len(stale) {
			break
		}
		for _, f := range stale {
			q.tree.Remove(f)
			q.expired.Increment()
			q.log.Debugf("expired: %s deadline: %v", f, f.Deadline)
		}
		total += len(stale)
	}
	return total
}

// Len - number of frames currently queued
func (q *Queue) Len() int {
	return q.tree.Count()
}

// IsEmpty - true when nothing is waiting
func (q *Queue) IsEmpty() bool {
	return q.tree.IsEmpty()
}

// Statistics - snapshot the queue counters
func (q *Queue) Statistics() Statistics {
	return Statistics{
		Pushed:     q.pushed.Uint64(),
		Expired:    q.expired.Uint64(),
		Rejected:   q.rejected.Uint64(),
		Queued:     q.tree.Count(),
		BlocksUsed: q.pool.Used(),
	}
}
