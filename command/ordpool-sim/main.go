// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// randomised churn over the pool backed index and the transmit queue
//
// exercises the rebalancing and block accounting under load and
// verifies the structural invariants after every round
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/quietbay/ordpool/avl"
	"github.com/quietbay/ordpool/txqueue"
)

type simEntry struct {
	key int
}

func (e *simEntry) String() string {
	return strconv.Itoa(e.key)
}

func (e *simEntry) Compare(x interface{}) int {
	q := x.(*simEntry)
	switch {
	case e.key < q.key:
		return -1
	case e.key > q.key:
		return +1
	default:
		return 0
	}
}

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "capacity", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--capacity=N] [--rounds=N] [--seed=N] [--log-dir=DIR] [--print]", program)
	}

	capacity := 512
	if len(options["capacity"]) > 0 {
		capacity, err = strconv.Atoi(options["capacity"][0])
		if nil != err || capacity < 1 {
			exitwithstatus.Message("%s: invalid capacity: %q", program, options["capacity"][0])
		}
	}

	rounds := 1000
	if len(options["rounds"]) > 0 {
		rounds, err = strconv.Atoi(options["rounds"][0])
		if nil != err || rounds < 1 {
			exitwithstatus.Message("%s: invalid rounds: %q", program, options["rounds"][0])
		}
	}

	seed := time.Now().UnixNano()
	if len(options["seed"]) > 0 {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q", program, options["seed"][0])
		}
	}

	logDir := "log"
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}
	if err := os.MkdirAll(logDir, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %s", program, err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: logDir,
		File:      "ordpool-sim.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed: %s", program, err)
	}
	defer logger.Finalise()

	rng := rand.New(rand.NewSource(seed))
	fmt.Printf("seed: %d  capacity: %d  rounds: %d\n", seed, capacity, rounds)

	churnIndex(rng, capacity, rounds, len(options["print"]) > 0)
	churnQueue(rng, capacity, rounds)
}

// random insert/remove churn directly on the index
func churnIndex(rng *rand.Rand, capacity int, rounds int, printTree bool) {
	pool := avl.NewPool(capacity)
	tree := avl.NewWithHint(pool, capacity)

	live := []*simEntry{}
	inserts := 0
	removes := 0
	refused := 0

	for round := 0; round < rounds; round += 1 {
		n := rng.Intn(capacity)
		for len(live) > n {
			i := rng.Intn(len(live))
			e := live[i]
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
			if !tree.Remove(e) {
				exitwithstatus.Message("round %d: remove %v failed", round, e)
			}
			removes += 1
		}
		for len(live) < n {
			// small key range forces key collisions
			e := &simEntry{key: rng.Intn(capacity / 4)}
			if err := tree.Insert(e); nil != err {
				refused += 1
				break
			}
			live = append(live, e)
			inserts += 1
		}

		if tree.Count() != len(live) || pool.Used() != len(live) {
			exitwithstatus.Message("round %d: bookkeeping drift: count: %d  used: %d  live: %d",
				round, tree.Count(), pool.Used(), len(live))
		}
		if !tree.CheckUp() || !tree.CheckCounts() || !tree.CheckBalance() {
			tree.Print(true)
			exitwithstatus.Message("round %d: structural invariant broken", round)
		}
	}

	fmt.Printf("index: inserts: %d  removes: %d  refused: %d  final entries: %d  nodes: %d\n",
		inserts, removes, refused, tree.Count(), tree.Nodes())
	if printTree {
		depth := tree.Print(true)
		fmt.Printf("depth: %d\n", depth)
	}
}

// drive the transmit queue with random frames and deadlines
func churnQueue(rng *rand.Rand, capacity int, rounds int) {
	log := logger.New("sim")
	clock := time.Now

	q := txqueue.New(avl.NewPool(capacity), log, clock)

	popped := 0
	for round := 0; round < rounds; round += 1 {
		f := &txqueue.Frame{
			ID:       uint32(rng.Intn(1 << 11)),
			Length:   uint8(rng.Intn(9)),
			Deadline: clock().Add(time.Duration(rng.Intn(50)) * time.Millisecond),
		}
		_ = q.Push(f)

		if 0 == round%3 {
			if nil != q.Pop() {
				popped += 1
			}
		}
	}
	q.PurgeExpired()

	stats := q.Statistics()
	fmt.Printf("queue: pushed: %d  popped: %d  expired: %d  rejected: %d  queued: %d  blocks: %d\n",
		stats.Pushed, popped, stats.Expired, stats.Rejected, stats.Queued, stats.BlocksUsed)
}
