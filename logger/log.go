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

// Package logger is the central log for the project. Log entries are
// identified by a tag, which by convention is the name of the package (or
// sub-system) making the entry.
//
// Entries accumulate in memory and can be written out with the Write() and
// Tail() functions. With SetEcho() entries are additionally printed as
// they arrive, which is how the command line program surfaces the log.
//
// Immediately repeated entries are collapsed into one entry with a repeat
// count. The DSP loops in this project run at tens of thousands of
// iterations per second so a misbehaving peripheral would otherwise flood
// the log in moments.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries kept in the central log.
const maxEntries = 256

// there is only one log for the entire application. the package level
// functions below all operate on it.
type central struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var log = central{
	entries: make([]Entry, 0, maxEntries),
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	log.crit.Lock()
	defer log.crit.Unlock()

	// strip newlines. each entry is a single line
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(log.entries) > 0 {
		e := &log.entries[len(log.entries)-1]
		if e.Tag == tag && e.Detail == detail {
			e.Repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	e := Entry{Timestamp: time.Now(), Tag: tag, Detail: detail}
	log.entries = append(log.entries, e)
	if len(log.entries) > maxEntries {
		log.entries = log.entries[len(log.entries)-maxEntries:]
	}

	if log.echo != nil {
		io.WriteString(log.echo, e.String())
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.entries = log.entries[:0]
}

// Write contents of the central logger to output.
func Write(output io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	for _, e := range log.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	if number > len(log.entries) {
		number = len(log.entries)
	}
	for _, e := range log.entries[len(log.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints entries to output as they are made. A nil output turns
// echoing off.
func SetEcho(output io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.echo = output
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func BorrowLog(f func([]Entry)) {
	log.crit.Lock()
	defer log.crit.Unlock()
	f(log.entries)
}
