// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/pcmtab"
	"github.com/ik5/pcmtab/emit"
	"github.com/ik5/pcmtab/internal/batch"
	"github.com/ik5/pcmtab/internal/config"
	pcmlog "github.com/ik5/pcmtab/internal/log"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "pcmtab <input_dir> <output_dir>",
		Short: "Convert audio files to C++ PCM header tables",
		Long: `pcmtab decodes every matching audio file in input_dir, converts it to
the target PCM format and writes one C++ header per file into output_dir,
together with an index header listing all converted tables.

Supported inputs are MP3, WAV, FLAC, Ogg Vorbis and AIFF. Settings may also
come from PCMTAB_* environment variables or a YAML file given with --config.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if configFile != "" {
				if err := config.ReadFile(v, configFile); err != nil {
					return err
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger := pcmlog.New(cmd.ErrOrStderr(), pcmlog.Level(cfg.Verbose, cfg.Quiet))
			logger.Debug("target format", "format", cfg.Format.String())

			res, err := batch.Run(cmd.Context(), batch.Config{
				InputDir:   args[0],
				OutputDir:  args[1],
				Pattern:    cfg.Pattern,
				Format:     cfg.Format,
				Emit:       cfg.Emit,
				PreviewWAV: cfg.PreviewWAV,
				Logger:     logger,
			})
			if res.Found > 0 {
				printSummary(cmd.OutOrStdout(), res, cfg.Emit)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.String("pattern", "", "glob of files to convert (default *.mp3, *.wav, *.flac, *.ogg)")
	f.Int("sample-rate", pcmtab.DefaultFormat.SampleRate, "target sample rate in Hz")
	f.Int("channels", pcmtab.DefaultFormat.Channels, "target channels (1 or 2)")
	f.Int("bit-depth", pcmtab.DefaultFormat.BitDepth, "target bit depth (16 or 32)")
	f.String("namespace", emit.DefaultNamespace, "C++ namespace of generated symbols, empty for global scope")
	f.String("index-name", emit.DefaultIndexName, "file name of the index header")
	f.Int("per-line", emit.DefaultPerLine, "sample values per line in generated tables")
	f.Bool("preview-wav", false, "also write each converted table as a WAV file")
	f.StringVar(&configFile, "config", "", "YAML config file")
	f.BoolP("verbose", "v", false, "log debug details")
	f.BoolP("quiet", "q", false, "log warnings and errors only")

	return cmd
}

func printSummary(w io.Writer, res batch.Result, opts emit.Options) {
	fmt.Fprintf(w, "Successfully converted %d/%d files\n", res.Converted, res.Found)
	first, ok := res.Index.At(0)
	if !ok {
		return
	}

	prefix := ""
	if opts.Namespace != "" {
		prefix = opts.Namespace + "::"
	}

	fmt.Fprintf(w, "\nTo use in your code:\n")
	fmt.Fprintf(w, "  #include %q\n", opts.IndexName)
	fmt.Fprintf(w, "  auto* file = %sgetAudioFile(%sAudioIndex::%s);\n", prefix, prefix, first.Ident)
}
