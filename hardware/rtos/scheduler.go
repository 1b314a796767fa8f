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

package rtos

// Status is returned by a Task to describe why it yielded.
type Status int

// List of valid Status values.
const (
	// the task reached a natural yield point and can be polled again
	// immediately
	Ready Status = iota

	// the task is blocked on time or on a semaphore
	Waiting
)

// Task is a cooperatively scheduled function. See the package
// documentation for the yield contract.
type Task func(p *Proc) Status

// Proc is the per-task handle passed to the task on every poll.
type Proc struct {
	// the core's tick counter at the time of the poll
	now uint64

	// tick at which a sleeping task should next be polled
	wake uint64
}

// Now returns the core's tick counter as it was at the start of the poll.
func (p *Proc) Now() uint64 {
	return p.now
}

// Sleep arranges for the task not to be polled again until d ticks have
// passed. The task should return Waiting immediately after calling Sleep.
func (p *Proc) Sleep(d uint64) {
	p.wake = p.now + d
}

// Scheduler runs the cooperative tasks of one core. It is not safe for
// concurrent use: a scheduler belongs to its core's goroutine.
type Scheduler struct {
	tasks []*taskEntry
}

type taskEntry struct {
	fn   Task
	proc Proc
}

// Add a task to the scheduler. Tasks are polled in the order they were
// added.
func (s *Scheduler) Add(fn Task) {
	s.tasks = append(s.tasks, &taskEntry{fn: fn})
}

// Poll gives every task one chance to run. Sleeping tasks whose wake time
// has not been reached are skipped. Poll never blocks.
func (s *Scheduler) Poll(now uint64) {
	for _, t := range s.tasks {
		if t.proc.wake > now {
			continue
		}
		t.proc.now = now
		t.fn(&t.proc)
	}
}
