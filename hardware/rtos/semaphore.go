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

import "sync/atomic"

// Semaphore is a binary semaphore safe to use between cores. A signal
// made before any task is waiting is remembered; a second signal before
// the first is consumed is absorbed (binary, not counting).
//
// The atomic handoff doubles as a memory barrier: plain state written
// before Signal() is visible to the task that wins TryWait(). The
// handshake counter relies on this.
type Semaphore struct {
	flag atomic.Bool
}

// NewSemaphore creates a binary semaphore in the given state.
func NewSemaphore(signalled bool) *Semaphore {
	s := &Semaphore{}
	s.flag.Store(signalled)
	return s
}

// Signal the semaphore.
func (s *Semaphore) Signal() {
	s.flag.Store(true)
}

// TryWait consumes a pending signal if there is one. Returns true if a
// signal was consumed. Cooperative tasks poll this and yield on false;
// they never spin.
func (s *Semaphore) TryWait() bool {
	return s.flag.CompareAndSwap(true, false)
}
