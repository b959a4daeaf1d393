// SPDX-License-Identifier: EPL-2.0

// Package audio defines the collaborator contracts of the playback pipeline.
//
// Two things live here: the Sink interface, which models a hardware audio
// output as a configurable blocking byte queue, and Capabilities, the
// injectable policy describing what a concrete output device can play.
//
// # Sink
//
// A Sink goes through a strict lifecycle:
//
//	sink.Configure(44100, 16, 1)
//	sink.Enable()
//	sink.WriteBlocking(pcm, timeout)
//	sink.Disable()
//
// WriteBlocking is where real-time pacing happens: the device consumes
// samples at its clock rate and the write blocks while its queue is full,
// which throttles the producer to real time. The timeout is an upper bound
// on that wait, not a pacing mechanism. Concrete implementations live in
// the sinks subpackages; tests use the fake in internal/audiotest.
//
// # Capabilities
//
// Format feasibility is hardware policy, not file-format policy, so it is
// kept out of the wav parser and injected where playback decisions are made:
//
//	caps := audio.DefaultCapabilities()
//	if err := caps.Validate(1, 22050, 16, 1); err != nil {
//	    // 22.05 kHz is not a supported DAC frequency
//	}
//
// DefaultCapabilities matches the MAX98357A class of I2S amplifiers the
// original hardware used.
package audio
