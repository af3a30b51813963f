package main

import (
	"io"
	"os"

	"github.com/smykla-skalski/benchtimer/pkg/autotimer"
	"github.com/smykla-skalski/benchtimer/pkg/period"
)

// phaseTiming reports per-phase elapsed times of benchtimer itself to a sink
// when BENCHTIMER_PHASE_TIMING=1. A single os.Getenv check when disabled.
type phaseTiming struct {
	sink io.Writer
}

func newPhaseTiming(sink io.Writer) *phaseTiming {
	if os.Getenv("BENCHTIMER_PHASE_TIMING") != "1" {
		return &phaseTiming{}
	}

	return &phaseTiming{sink: sink}
}

// start begins timing phase and returns the function that reports it.
func (p *phaseTiming) start(phase string) func() {
	if p.sink == nil {
		return func() {}
	}

	r := autotimer.New[int64](p.sink, "phase "+phase+": ", period.Micro, autotimer.WithNewline())

	return func() { _ = r.Stop() }
}
