// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/afero/mem"

	"github.com/ik5/pcmtab"
	"github.com/ik5/pcmtab/audio"
	"github.com/ik5/pcmtab/emit"
	"github.com/ik5/pcmtab/formats/wav"
	"github.com/ik5/pcmtab/ident"
)

type Config struct {
	InputDir  string
	OutputDir string
	// Pattern is a glob relative to InputDir. Empty selects DefaultPatterns.
	Pattern string
	Format  pcmtab.Format
	Emit    emit.Options
	// PreviewWAV also writes each table as <stem>.wav for listening.
	PreviewWAV bool

	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Registry defaults to pcmtab.DefaultRegistry.
	Registry *audio.Registry
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Failure is a file that could not be converted.
type Failure struct {
	File string
	Err  error
}

type Result struct {
	Found     int
	Converted int
	Failed    int
	Failures  []Failure
	// Outputs are the paths written, in write order.
	Outputs []string
	// Index lists the converted tables in registry order.
	Index emit.Index
}

func (c *Config) setDefaults() {
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	if c.Registry == nil {
		c.Registry = pcmtab.DefaultRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Run converts the files selected by cfg. Nothing is written, and the
// output directory is not created, when the input directory is missing
// or no file matches.
func Run(ctx context.Context, cfg Config) (Result, error) {
	cfg.setDefaults()
	log := cfg.Logger

	var res Result

	if err := cfg.Format.Validate(); err != nil {
		return res, err
	}
	if err := cfg.Emit.Validate(); err != nil {
		return res, err
	}

	info, err := cfg.Fs.Stat(cfg.InputDir)
	if err != nil || !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrInputDirMissing, cfg.InputDir)
	}

	files, err := Discover(cfg.Fs, cfg.InputDir, cfg.Pattern)
	if err != nil {
		return res, err
	}
	if len(files) == 0 {
		return res, fmt.Errorf("%w in %s", ErrNoFiles, cfg.InputDir)
	}
	res.Found = len(files)

	log.Info("found audio files", "count", len(files), "dir", cfg.InputDir, "format", cfg.Format.String())

	caps := Probe(cfg.Registry)
	for _, ext := range caps.Missing(files) {
		log.Warn("no decoder available, matching files will fail", "extension", ext, "supported", caps.Formats())
	}
	warnCollisions(log, files)

	inputs := newPathSet(files)
	indexPath := filepath.Join(cfg.OutputDir, cfg.Emit.IndexName)
	if inputs.has(indexPath) {
		return res, fmt.Errorf("%w: %s", ErrOverwritesInput, indexPath)
	}

	if err := cfg.Fs.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	res.Index = emit.Index{Format: cfg.Format}
	idx := &res.Index

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after %d of %d files: %w", res.Converted+res.Failed, res.Found, err)
		}

		table, outputs, err := convertFile(cfg, inputs, path)
		res.Outputs = append(res.Outputs, outputs...)
		if err != nil {
			log.Error("conversion failed", "file", path, "error", err)
			res.Failed++
			res.Failures = append(res.Failures, Failure{File: path, Err: err})
			continue
		}

		log.Info("converted",
			"file", path,
			"ident", table.Ident,
			"samples", table.SampleCount(),
			"bytes", table.ByteSize(),
			"duration_ms", table.DurationMS(),
		)
		res.Converted++
		idx.Add(table)
	}

	if res.Converted > 0 {
		err := writeAtomic(cfg.Fs, indexPath, func(w io.WriteSeeker) error {
			return emit.WriteIndex(w, *idx, cfg.Emit)
		})
		if err != nil {
			return res, fmt.Errorf("writing index: %w", err)
		}
		res.Outputs = append(res.Outputs, indexPath)
		log.Info("wrote index", "path", indexPath, "entries", idx.Len())
	}

	if res.Failed > 0 {
		return res, fmt.Errorf("%w: %d of %d", ErrConversionFailed, res.Failed, res.Found)
	}

	return res, nil
}

// convertFile decodes path and writes its header, plus the WAV preview
// when enabled. Everything is rendered in memory first. The header is
// removed again when the preview cannot be written.
func convertFile(cfg Config, inputs pathSet, path string) (*pcmtab.Table, []string, error) {
	headerPath := filepath.Join(cfg.OutputDir, ident.HeaderName(path))
	previewPath := filepath.Join(cfg.OutputDir, ident.Stem(path)+".wav")

	if err := checkNames(cfg, inputs, path, headerPath, previewPath); err != nil {
		return nil, nil, err
	}

	dec, ok := cfg.Registry.ForPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("%w %q", ErrNoDecoder, filepath.Ext(path))
	}

	table, err := decode(cfg.Fs, dec, path, cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	var header bytes.Buffer
	if err := emit.WriteTable(&header, table, cfg.Emit); err != nil {
		return nil, nil, err
	}

	var preview []byte
	if cfg.PreviewWAV {
		if preview, err = renderPreview(table); err != nil {
			return nil, nil, fmt.Errorf("rendering preview: %w", err)
		}
	}

	err = writeAtomic(cfg.Fs, headerPath, func(w io.WriteSeeker) error {
		_, err := header.WriteTo(w)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if !cfg.PreviewWAV {
		return table, []string{headerPath}, nil
	}

	err = writeAtomic(cfg.Fs, previewPath, func(w io.WriteSeeker) error {
		_, err := w.Write(preview)
		return err
	})
	if err != nil {
		if rmErr := cfg.Fs.Remove(headerPath); rmErr != nil {
			return nil, []string{headerPath}, fmt.Errorf("writing preview: %w", errors.Join(err, rmErr))
		}
		return nil, nil, fmt.Errorf("writing preview: %w", err)
	}

	return table, []string{headerPath, previewPath}, nil
}

// checkNames rejects a file whose outputs would replace an input or clash
// with the index header.
func checkNames(cfg Config, inputs pathSet, path, headerPath, previewPath string) error {
	if strings.EqualFold(filepath.Base(headerPath), cfg.Emit.IndexName) {
		return fmt.Errorf("%w: header %s is the index file", ErrReservedName, filepath.Base(headerPath))
	}
	if id := ident.Sanitize(path); emit.ReservedIdent(id) {
		return fmt.Errorf("%w: identifier %s", ErrReservedName, id)
	}

	outputs := []string{headerPath}
	if cfg.PreviewWAV {
		outputs = append(outputs, previewPath)
	}
	for _, out := range outputs {
		if inputs.has(out) {
			return fmt.Errorf("%w: %s", ErrOverwritesInput, out)
		}
	}
	return nil
}

// renderPreview encodes the table as a WAV file in memory.
func renderPreview(table *pcmtab.Table) ([]byte, error) {
	f := mem.NewFileHandle(mem.CreateFile(ident.Stem(table.Name) + ".wav"))
	defer f.Close()

	tf := table.Format
	if err := wav.WritePCM(f, tf.SampleRate, tf.Channels, tf.BitDepth, table.Samples); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}

// pathSet holds discovered inputs, matched case-insensitively so that a
// case-folding filesystem cannot slip an overwrite through.
type pathSet map[string]struct{}

func newPathSet(paths []string) pathSet {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		set[pathKey(p)] = struct{}{}
	}
	return set
}

func (s pathSet) has(path string) bool {
	_, ok := s[pathKey(path)]
	return ok
}

func pathKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return strings.ToLower(filepath.Clean(path))
}

func decode(fs afero.Fs, dec audio.Decoder, path string, f pcmtab.Format) (*pcmtab.Table, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	return pcmtab.Convert(path, src, f)
}

func warnCollisions(log *slog.Logger, files []string) {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}

	for _, c := range ident.Collisions(names) {
		log.Warn("files share an identifier, the generated headers will not compile together",
			"ident", c.Key, "files", c.Files)
	}
	for _, c := range ident.HeaderCollisions(names) {
		log.Warn("files share a header name, later files overwrite earlier ones",
			"header", c.Key, "files", c.Files)
	}
}
