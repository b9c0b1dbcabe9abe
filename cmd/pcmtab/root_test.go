// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/pcmtab"
	"github.com/ik5/pcmtab/formats/wav"
	"github.com/ik5/pcmtab/internal/batch"
)

func writeWAV(t *testing.T, path string, samples []int32) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wav.WritePCM(f, 44100, 1, 16, samples))
	require.NoError(t, f.Close())
}

func fixtureDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "beep.wav"), []int32{8192, -8192})
	writeWAV(t, filepath.Join(dir, "alarm.wav"), []int32{0, 16384, -16384, 8192})
	return dir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRoot_AlarmBeep(t *testing.T) {
	t.Parallel()

	in := fixtureDir(t)
	out := filepath.Join(t.TempDir(), "generated")

	stdout, _, err := execute(t, in, out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Successfully converted 2/2 files")
	assert.Contains(t, stdout, `#include "audio_index.h"`)
	assert.Contains(t, stdout, "Exterminate::Audio::getAudioFile(Exterminate::Audio::AudioIndex::ALARM)")

	assert.FileExists(t, filepath.Join(out, "alarm.h"))
	assert.FileExists(t, filepath.Join(out, "beep.h"))

	index := readFile(t, filepath.Join(out, "audio_index.h"))
	assert.Contains(t, index, "    ALARM = 0,\n")
	assert.Contains(t, index, "    BEEP = 1,\n")
	assert.Contains(t, index, "    COUNT = 2\n")
	assert.Contains(t, index, "namespace Exterminate {\nnamespace Audio {\n")
}

func TestRoot_Flags(t *testing.T) {
	t.Parallel()

	in := fixtureDir(t)
	out := t.TempDir()

	stdout, _, err := execute(t,
		"--pattern", "alarm.*",
		"--channels", "2",
		"--bit-depth", "32",
		"--namespace", "",
		"--index-name", "sfx.h",
		"--per-line", "4",
		"--preview-wav",
		in, out,
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Successfully converted 1/1 files")
	assert.Contains(t, stdout, "getAudioFile(AudioIndex::ALARM)")
	assert.NotContains(t, stdout, "::getAudioFile")

	assert.NoFileExists(t, filepath.Join(out, "beep.h"))
	assert.FileExists(t, filepath.Join(out, "alarm.wav"))

	table := readFile(t, filepath.Join(out, "alarm.h"))
	assert.Contains(t, table, "int32_t")
	assert.Contains(t, table, "ALARM_CHANNELS = 2")
	assert.NotContains(t, table, "namespace")

	index := readFile(t, filepath.Join(out, "sfx.h"))
	assert.Contains(t, index, "AUDIO_BIT_DEPTH = 32")
}

func TestRoot_ConfigFile(t *testing.T) {
	t.Parallel()

	in := fixtureDir(t)
	out := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "pcmtab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("namespace: Game::Sfx\nindex_name: sounds.h\nsample_rate: 22050\n"), 0o644))

	stdout, _, err := execute(t, "--config", cfgPath, "--index-name", "flag.h", in, out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Game::Sfx::AudioIndex::ALARM")
	assert.FileExists(t, filepath.Join(out, "flag.h"))
	assert.NoFileExists(t, filepath.Join(out, "sounds.h"))
	assert.Contains(t, readFile(t, filepath.Join(out, "flag.h")), "AUDIO_SAMPLE_RATE = 22050")
}

func TestRoot_Env(t *testing.T) {
	t.Setenv("PCMTAB_INDEX_NAME", "env.h")

	in := fixtureDir(t)
	out := t.TempDir()

	_, _, err := execute(t, in, out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "env.h"))
}

func TestRoot_NoFiles(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "generated")

	stdout, _, err := execute(t, in, out)
	require.ErrorIs(t, err, batch.ErrNoFiles)
	assert.Empty(t, stdout)
	assert.NoDirExists(t, out)
}

func TestRoot_InputDirMissing(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.ErrorIs(t, err, batch.ErrInputDirMissing)
}

func TestRoot_PartialFailure(t *testing.T) {
	t.Parallel()

	in := fixtureDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.wav"), []byte("not a wav file"), 0o644))
	out := t.TempDir()

	stdout, stderr, err := execute(t, in, out)
	require.ErrorIs(t, err, batch.ErrConversionFailed)

	assert.Contains(t, stdout, "Successfully converted 2/3 files")
	assert.Contains(t, stderr, "conversion failed")
	assert.FileExists(t, filepath.Join(out, "audio_index.h"))
}

func TestRoot_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bit depth", []string{"--bit-depth", "24"}, pcmtab.ErrUnsupportedBitDepth},
		{"channels", []string{"--channels", "6"}, pcmtab.ErrUnsupportedChannels},
		{"sample rate", []string{"--sample-rate", "0"}, pcmtab.ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(t.TempDir(), "generated")
			args := append(tt.args, fixtureDir(t), out)

			_, _, err := execute(t, args...)
			require.ErrorIs(t, err, tt.want)
			assert.NoDirExists(t, out)
		})
	}
}

func TestRoot_Args(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, t.TempDir())
	require.Error(t, err)

	_, _, err = execute(t, "a", "b", "c")
	require.Error(t, err)
}

func TestRoot_Verbosity(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "-v", fixtureDir(t), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")

	_, stderr, err = execute(t, "-v", "-q", fixtureDir(t), t.TempDir())
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=INFO")
}
