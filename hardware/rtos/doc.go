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

// Package rtos implements the cooperative task model the firmware's
// protothreads provided. Each core owns one Scheduler; tasks on a
// scheduler run to a yield point and never preempt one another. The only
// preemption on a core comes from the timer tick, which is not a task and
// is not visible to this package.
//
// A task is a function polled by the scheduler. It does whatever work is
// ready to be done and returns: Ready if it reached a natural yield point,
// Waiting if it is blocked on time or on a semaphore. A waiting task is
// simply polled again on the next round - there is no run queue and no
// priority, matching the round-robin behaviour of the original scheduler.
//
// Time is counted in ticks of the core's timer. A task sleeps by calling
// Proc.Sleep(n) and returning Waiting; the scheduler skips it until the
// core's tick counter reaches the wake time. Tasks must never block the
// goroutine: a task that wants to wait on a Semaphore polls TryWait() and
// yields, it does not spin.
package rtos
