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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gopherpico/hardware"
	"github.com/jetsetilly/gopherpico/hardware/capture"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/hardware/vga"
	"github.com/jetsetilly/gopherpico/logger"
	"github.com/jetsetilly/gopherpico/modalflag"
	"github.com/jetsetilly/gopherpico/otoplayer"
	"github.com/jetsetilly/gopherpico/pcmsource"
	"github.com/jetsetilly/gopherpico/performance"
	"github.com/jetsetilly/gopherpico/sdlvga"
	"github.com/jetsetilly/gopherpico/statsview"
	"github.com/jetsetilly/gopherpico/tuner"
	"github.com/jetsetilly/gopherpico/version"
	"github.com/jetsetilly/gopherpico/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Path(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	defaults := hardware.NewPreferences()

	source := md.AddString("source", "tone", "acquisition source: tone, mic, or a .wav/.mp3/.ogg file")
	freq0 := md.AddFloat64("freq0", defaults.Freq0, "core 0 beep frequency (Hz)")
	freq1 := md.AddFloat64("freq1", defaults.Freq1, "core 1 beep frequency (Hz)")
	wavOut := md.AddString("wav", "", "record DAC output to the named WAV file")
	audio := md.AddBool("audio", false, "play DAC output through the default audio device")
	display := md.AddBool("display", false, "show the spectrum in an SDL window")
	useTuner := md.AddBool("tuner", false, "retune the voices from the keyboard")
	duration := md.AddDuration("duration", 0, "stop after this much time (0 means run until interrupted)")
	dump := md.AddString("dump", "", "write a graphviz dump of the machine to the named file on exit")
	stats := md.AddBool("stats", false, "launch statsview HTTP server")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prefs := defaults
	prefs.Freq0 = *freq0
	prefs.Freq1 = *freq1

	// with live audio the device's pull rate holds the machine to real
	// time and throttling would fight it
	prefs.Throttle = !*audio

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		cancel()
	}()

	// acquisition source
	var src capture.Source
	switch {
	case *source == "tone":
		src = pcmsource.NewTone(prefs.SampleRate, prefs.Freq0, true)
	case *source == "mic":
		mic, err := pcmsource.NewMicrophone(prefs.SampleRate)
		if err != nil {
			return err
		}
		defer mic.Close()
		src = mic
	case strings.HasPrefix(filepath.Ext(*source), "."):
		file, err := pcmsource.NewFile(*source, prefs.SampleRate, true)
		if err != nil {
			return err
		}
		src = file
	default:
		return fmt.Errorf("unrecognised acquisition source: %s", *source)
	}

	// DAC backend
	var d dac.DAC = dac.Discard{}
	var wav *wavwriter.WavWriter

	if *audio {
		player, err := otoplayer.New(prefs.TickRate)
		if err != nil {
			return err
		}
		defer player.Close()
		d = player
	} else if *wavOut != "" {
		wav, err = wavwriter.New(*wavOut, prefs.TickRate)
		if err != nil {
			return err
		}
		d = wav
	}

	// display backend
	var renderer vga.Renderer = vga.Nil{}

	if *display {
		scr, err := sdlvga.NewSdlVga()
		if err != nil {
			return err
		}
		defer scr.Destroy()
		go func() {
			<-scr.QuitRequested()
			cancel()
		}()
		renderer = scr
	}

	pico, err := hardware.New(prefs, d, src, renderer, os.Stdout)
	if err != nil {
		return err
	}

	if *useTuner {
		go func() {
			if err := tuner.Run(ctx, pico); err != nil {
				logger.Logf("tuner", "%v", err)
			}
			cancel()
		}()
	}

	err = pico.Run(ctx)
	if err != nil {
		return err
	}

	if wav != nil {
		if err := wav.EndMixing(); err != nil {
			return err
		}
	}

	if *dump != "" {
		if err := performance.DumpMachine(pico, *dump); err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	duration := md.AddDuration("duration", 5*time.Second, "run for this much time")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	return performance.Check(os.Stdout, *profile, duration.String())
}
