// SPDX-License-Identifier: EPL-2.0

package wavplay

import (
	"fmt"
	"os"

	"github.com/ik5/wavplay/audio"
	"github.com/ik5/wavplay/player"
)

// PlayFile is the high-level convenience entry point: it opens path,
// streams the file's PCM payload into sink and reports the transfer
// statistics.
//
// It builds one single-use player.Player under the hood; pass options to
// adjust the chunk size, the write timeout, the device capabilities or
// logging. For sources other than files, or to inspect the session state
// machine, use player.New directly.
//
// Example:
//
//	sink := portaudio.New()
//	stats, err := wavplay.PlayFile("gettys_m.wav", sink)
//	if err != nil {
//	    // the error tells apart a broken file, an infeasible format
//	    // and a misbehaving device
//	}
//	fmt.Println("played", stats.Bytes, "bytes in", stats.Elapsed)
func PlayFile(path string, sink audio.Sink, opts ...player.Option) (player.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return player.Stats{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return player.New(f, sink, opts...).Play()
}
