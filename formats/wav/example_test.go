// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/pcmtab/audio"
	"github.com/ik5/pcmtab/formats/wav"
)

// Example writes a short PCM file and decodes it again.
func Example() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	out, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := wav.WritePCM(out, 8000, 1, 16, []int32{0, 16384, -16384, 0}); err != nil {
		log.Fatal(err)
	}
	out.Close()

	in, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	samples, err := audio.ReadAll(src, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())
	fmt.Println(samples)

	// Output:
	// 8000 Hz, 1 channel(s)
	// [0 0.5 -0.5 0]
}
