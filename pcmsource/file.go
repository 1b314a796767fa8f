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

package pcmsource

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/logger"
)

// Sentinel errors returned when loading a file source.
const (
	UnsupportedFile = "pcmsource: unsupported file type: %v"
	DecodeError     = "pcmsource: %v: %v"
	EmptyFile       = "pcmsource: %v: no samples"
)

const fileLogTag = "pcmsource"

// File loops the mono content of a recording at the capture rate. The
// whole file is decoded and resampled at load time; Fill() is then a
// copy.
type File struct {
	data []uint8
	pos  int

	sampleRate float64
	realtime   bool
}

// NewFile is the preferred method of initialisation for the File type.
// The decoder is chosen by file extension: .wav, .mp3 or .ogg. Stereo
// material keeps the left channel only. captureRate is the rate the
// pipeline will consume at; the recording is resampled to it.
func NewFile(filename string, captureRate float64, realtime bool) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filename, err)
	}
	defer f.Close()

	var data []float32
	var fileRate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, fileRate, err = decodeWAV(f)
	case ".mp3":
		data, fileRate, err = decodeMP3(f)
	case ".ogg":
		data, fileRate, err = decodeOGG(f)
	default:
		return nil, curated.Errorf(UnsupportedFile, filename)
	}
	if err != nil {
		return nil, curated.Errorf(DecodeError, filename, err)
	}
	if len(data) == 0 {
		return nil, curated.Errorf(EmptyFile, filename)
	}

	logger.Logf(fileLogTag, "%s: %d samples at %0.0fHz", filepath.Base(filename), len(data), fileRate)

	// nearest-sample resample to the capture rate. crude but the
	// original capture path made no pretence of fidelity either
	outLen := int(float64(len(data)) * captureRate / fileRate)
	if outLen == 0 {
		return nil, curated.Errorf(EmptyFile, filename)
	}

	src := &File{
		data:       make([]uint8, outLen),
		sampleRate: captureRate,
		realtime:   realtime,
	}
	for i := 0; i < outLen; i++ {
		v := data[int(float64(i)*fileRate/captureRate)]

		// normalised float to unsigned 8-bit
		s := int(v*127) + 128
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		src.data[i] = uint8(s)
	}

	return src, nil
}

// Fill implements the capture.Source interface. The recording loops.
func (src *File) Fill(p []uint8) error {
	for i := range p {
		p[i] = src.data[src.pos]
		src.pos++
		if src.pos >= len(src.data) {
			src.pos = 0
		}
	}

	if src.realtime {
		time.Sleep(time.Duration(float64(len(p)) / src.sampleRate * float64(time.Second)))
	}

	return nil
}

// decodeWAV returns normalised mono samples and the file's sample rate.
func decodeWAV(f *os.File) ([]float32, float64, error) {
	dec := wav.NewDecoder(f)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	floatBuf := buf.AsFloat32Buffer()

	// first channel only
	numChans := int(dec.NumChans)
	data := make([]float32, 0, len(floatBuf.Data)/numChans)
	for i := 0; i < len(floatBuf.Data); i += numChans {
		data = append(data, floatBuf.Data[i])
	}

	return data, float64(dec.SampleRate), nil
}

// decodeMP3 returns normalised mono samples and the file's sample rate.
// go-mp3 always outputs 16-bit little-endian stereo so a frame is four
// bytes; the left channel is the first two.
func decodeMP3(f *os.File) ([]float32, float64, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	var data []float32

	err = nil
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, 0, err
		}

		for i := 0; i+1 < chunkLen; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(v)/32768.0)
		}
	}

	return data, float64(dec.SampleRate()), nil
}

// decodeOGG returns normalised mono samples and the file's sample rate.
func decodeOGG(f *os.File) ([]float32, float64, error) {
	interleaved, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}

	data := make([]float32, 0, len(interleaved)/format.Channels)
	for i := 0; i < len(interleaved); i += format.Channels {
		data = append(data, interleaved[i])
	}

	return data, float64(format.SampleRate), nil
}
