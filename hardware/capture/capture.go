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

// Package capture implements the double-buffered acquisition pipeline that
// feeds the FFT. The buffering works as the original DMA arrangement did:
// there is one raw sample buffer, filled behind the consumer's back, and
// one windowed fixed-point pair owned by the consumer. Consume() copies
// and windows the raw samples and then immediately re-arms acquisition, so
// the capture of the next epoch overlaps the transform of this one.
//
// The consumer is a cooperative task. It polls Ready() and yields while an
// epoch is incomplete; it never blocks its core. The acquisition source
// runs in its own goroutine, standing in for the DMA engine, and paces
// itself however the backing peripheral requires.
package capture

import (
	"context"
	"math"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/fixed"
)

// Sentinel errors returned by the capture pipeline.
const (
	BadNumSamples = "capture: number of samples (%d) must be positive"
	SourceFailure = "capture: source: %v"
)

// Source implementations deliver raw samples to the pipeline. They stand
// in for the ADC/DMA pair: one Fill() call is one epoch.
type Source interface {
	// Fill p with exactly len(p) consecutively captured samples. Blocks
	// until the epoch is complete. Called from the pipeline's acquisition
	// goroutine, never from a core.
	Fill(p []uint8) error
}

// Pipeline owns the raw sample buffer and the Hann window table.
type Pipeline struct {
	src Source
	raw []uint8

	// window is immutable after initialisation
	window []fixed.Fix15

	// acquisition goroutine -> consumer: epoch complete (or failed)
	filled chan error

	// consumer -> acquisition goroutine: buffer free, capture the next
	// epoch
	rearm chan struct{}

	// error delivered by the most recent receive from filled
	err error
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. The Hann window table is computed here, once, for the life of the
// process.
func NewPipeline(src Source, numSamples int) (*Pipeline, error) {
	if numSamples <= 0 {
		return nil, curated.Errorf(BadNumSamples, numSamples)
	}

	p := &Pipeline{
		src:    src,
		raw:    make([]uint8, numSamples),
		window: make([]fixed.Fix15, numSamples),
		filled: make(chan error, 1),
		rearm:  make(chan struct{}, 1),
	}

	for i := 0; i < numSamples; i++ {
		p.window[i] = fixed.FromFloat(0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/float64(numSamples))))
	}

	return p, nil
}

// Start the acquisition goroutine. The first epoch begins immediately;
// subsequent epochs wait for the consumer's re-arm. Returns when the
// context is cancelled.
func (p *Pipeline) Start(ctx context.Context) {
	go func() {
		for {
			err := p.src.Fill(p.raw)

			select {
			case p.filled <- err:
			case <-ctx.Done():
				return
			}

			select {
			case <-p.rearm:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Ready returns true when a complete epoch is waiting to be consumed.
// Non-blocking; the consuming task yields on false.
func (p *Pipeline) Ready() bool {
	select {
	case err := <-p.filled:
		p.err = err
		return true
	default:
		return false
	}
}

// Consume widens each raw sample to fixed point, applies the Hann window,
// zeroes the imaginary part, and re-arms acquisition. Must only be called
// after Ready() has returned true. The re and im slices must be at least
// as long as the epoch.
//
// If the source failed, the epoch is skipped: acquisition is re-armed and
// a SourceFailure error returned. The pipeline remains usable.
func (p *Pipeline) Consume(re, im []fixed.Fix15) error {
	if p.err != nil {
		err := p.err
		p.err = nil
		p.rearm <- struct{}{}
		return curated.Errorf(SourceFailure, err)
	}

	for i, s := range p.raw {
		re[i] = fixed.Mul(fixed.FromInt(int(s)), p.window[i])
		im[i] = 0
	}

	// the raw buffer has been copied out. capture the next epoch while
	// the caller transforms this one
	p.rearm <- struct{}{}

	return nil
}

// NumSamples returns the epoch length.
func (p *Pipeline) NumSamples() int {
	return len(p.raw)
}

// Window returns the Hann window coefficient at index i. Exposed for the
// spectrum display and for tests.
func (p *Pipeline) Window(i int) fixed.Fix15 {
	return p.window[i]
}
