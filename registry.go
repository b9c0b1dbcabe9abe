// SPDX-License-Identifier: EPL-2.0

package pcmtab

import (
	"github.com/ik5/pcmtab/audio"
	"github.com/ik5/pcmtab/formats/aiff"
	"github.com/ik5/pcmtab/formats/flac"
	"github.com/ik5/pcmtab/formats/mp3"
	"github.com/ik5/pcmtab/formats/vorbis"
	"github.com/ik5/pcmtab/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("mp3", mp3.Decoder{})
	reg.Register("wav", wav.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}
