// SPDX-License-Identifier: EPL-2.0

package player

// State tracks a playback session through its life. Transitions are
// strictly forward: Idle, HeaderRead, Validated, SinkArmed, Streaming,
// Drained, Finished, with any fault landing in Aborted instead.
type State int

const (
	Idle State = iota
	HeaderRead
	Validated
	SinkArmed
	Streaming
	Drained
	Finished
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case HeaderRead:
		return "header read"
	case Validated:
		return "validated"
	case SinkArmed:
		return "sink armed"
	case Streaming:
		return "streaming"
	case Drained:
		return "drained"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}

	return "unknown"
}

// Done reports whether the session reached a terminal state.
func (s State) Done() bool {
	return s == Finished || s == Aborted
}
