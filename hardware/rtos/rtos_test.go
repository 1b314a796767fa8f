// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

package rtos_test

import (
	"testing"

	"github.com/jetsetilly/gopherpico/hardware/rtos"
	"github.com/jetsetilly/gopherpico/test"
)

func TestRoundRobin(t *testing.T) {
	var order []string

	sch := &rtos.Scheduler{}
	sch.Add(func(p *rtos.Proc) rtos.Status {
		order = append(order, "a")
		return rtos.Ready
	})
	sch.Add(func(p *rtos.Proc) rtos.Status {
		order = append(order, "b")
		return rtos.Ready
	})

	sch.Poll(0)
	sch.Poll(1)

	test.Equate(t, len(order), 4)
	test.Equate(t, order[0], "a")
	test.Equate(t, order[1], "b")
	test.Equate(t, order[2], "a")
	test.Equate(t, order[3], "b")
}

func TestSleep(t *testing.T) {
	polls := 0

	sch := &rtos.Scheduler{}
	sch.Add(func(p *rtos.Proc) rtos.Status {
		polls++
		p.Sleep(10)
		return rtos.Waiting
	})

	for now := uint64(0); now < 25; now++ {
		sch.Poll(now)
	}

	// polled at ticks 0, 10 and 20
	test.Equate(t, polls, 3)
}

func TestSemaphore(t *testing.T) {
	s := rtos.NewSemaphore(false)
	test.ExpectFailure(t, s.TryWait())

	s.Signal()
	test.ExpectSuccess(t, s.TryWait())

	// the signal has been consumed
	test.ExpectFailure(t, s.TryWait())

	// signals do not accumulate
	s.Signal()
	s.Signal()
	test.ExpectSuccess(t, s.TryWait())
	test.ExpectFailure(t, s.TryWait())
}

func TestSemaphoreInitiallySignalled(t *testing.T) {
	s := rtos.NewSemaphore(true)
	test.ExpectSuccess(t, s.TryWait())
	test.ExpectFailure(t, s.TryWait())
}

func TestPingPongAlternation(t *testing.T) {
	// two tasks on two schedulers, as the two cores arrange their
	// heartbeats. the semaphores must enforce strict alternation no matter
	// how the polls interleave
	goA := rtos.NewSemaphore(true)
	goB := rtos.NewSemaphore(false)

	var order []string

	schA := &rtos.Scheduler{}
	schA.Add(func(p *rtos.Proc) rtos.Status {
		if !goA.TryWait() {
			return rtos.Waiting
		}
		order = append(order, "A")
		goB.Signal()
		return rtos.Ready
	})

	schB := &rtos.Scheduler{}
	schB.Add(func(p *rtos.Proc) rtos.Status {
		if !goB.TryWait() {
			return rtos.Waiting
		}
		order = append(order, "B")
		goA.Signal()
		return rtos.Ready
	})

	// deliberately lopsided interleaving: core B polls three times as
	// often as core A
	for now := uint64(0); now < 60; now++ {
		if now%3 == 0 {
			schA.Poll(now)
		}
		schB.Poll(now)
	}

	test.ExpectSuccess(t, len(order) >= 2)
	for i := 1; i < len(order); i++ {
		test.ExpectSuccess(t, order[i] != order[i-1])
	}
	test.Equate(t, order[0], "A")
}
