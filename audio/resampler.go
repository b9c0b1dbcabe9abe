// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/pcmtab/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // srcRate / dstRate - how many source samples per output sample
	channels int

	// Sliding window of 4 source frames around the output position:
	// window[0] = k-1, window[1] = k, window[2] = k+1, window[3] = k+2
	window [4][]float32
	valid  [4]bool
	primed bool

	// Fractional position between window[1] and window[2]
	pos float64

	// Block buffer for reading from source
	srcBuf []float32
	bufPos int
	bufLen int
	eof    bool

	// One-pole low-pass state for anti-aliasing (when downsampling)
	useFilter    bool
	filterAlpha  float32
	filterState  []float32
	filterPrimed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels*1024),
		useFilter:   ratio > 1.0,
		filterState: make([]float32, channels),
	}

	if r.useFilter {
		// Cutoff near the Nyquist frequency of the destination rate
		r.filterAlpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fill refills the block buffer. A trailing partial frame is discarded.
func (r *Resampler) fill() error {
	r.bufPos, r.bufLen = 0, 0

	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.srcBuf)
		r.bufLen = n

		if err == io.EOF {
			r.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n > 0 {
			return nil
		}
	}

	return ErrNoProgress
}

// readFrame copies the next source frame into dst. It reports false
// once the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for r.bufLen-r.bufPos < r.channels {
		if r.eof {
			return false, nil
		}
		if err := r.fill(); err != nil {
			return false, err
		}
	}

	copy(dst, r.srcBuf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	return true, nil
}

func (r *Resampler) pull(slot int) error {
	ok, err := r.readFrame(r.window[slot])
	if err != nil {
		return err
	}

	r.valid[slot] = ok
	if ok && r.useFilter {
		r.lowPass(r.window[slot])
	}

	return nil
}

// lowPass applies y[n] = alpha * x[n] + (1-alpha) * y[n-1] in place.
func (r *Resampler) lowPass(frame []float32) {
	if !r.filterPrimed {
		// Start from the first frame to avoid a warm-up transient
		copy(r.filterState, frame)
		r.filterPrimed = true
	}

	for c := range frame {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// prime loads the first frames; frame k-1 duplicates frame 0.
func (r *Resampler) prime() error {
	r.primed = true

	if err := r.pull(1); err != nil {
		return err
	}
	if !r.valid[1] {
		return nil
	}

	copy(r.window[0], r.window[1])
	r.valid[0] = true

	if err := r.pull(2); err != nil {
		return err
	}

	return r.pull(3)
}

// advance slides the window forward by one source frame.
func (r *Resampler) advance() error {
	oldest := r.window[0]
	copy(r.window[:3], r.window[1:])
	r.window[3] = oldest

	copy(r.valid[:3], r.valid[1:])
	r.valid[3] = false

	return r.pull(3)
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Output ends once the last source frame is passed. Until then the
		// tail holds that frame, so the whole input duration is covered.
		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := range r.channels {
			y1 := r.window[1][c]
			if !r.valid[2] {
				dst[written*r.channels+c] = y1
				continue
			}

			y0 := y1
			if r.valid[0] {
				y0 = r.window[0][c]
			}

			y2 := r.window[2][c]

			y3 := y2
			if r.valid[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
