// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audvox"
	"github.com/ik5/audvox/config"
)

type simulateOptions struct {
	script string
	out    string
	tail   time.Duration
}

func simulateCommand(configPath *string) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a play script offline and write the mix to WAV",
		Long: `Run a script of play, volume and advance commands through the engine
and write the resulting mono mix as 16-bit WAV.

  play <group> [x y z]
  volume <bus> <volume>
  advance <duration>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return simulate(cmd, *configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "Path to the play script")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "mix.wav", "Path of the WAV file to write")
	cmd.Flags().DurationVar(&opts.tail, "tail", 10*time.Second, "Longest time to keep rendering after the script ends")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func simulate(cmd *cobra.Command, configPath string, opts *simulateOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(opts.script)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	steps, err := parseScript(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("script %s: %w", opts.script, err)
	}

	eng, err := audvox.New(cfg, audvox.WithLogger(log))
	if err != nil {
		return err
	}

	rep, err := runScript(eng, steps, opts.tail, log)
	if err != nil {
		return err
	}
	if err := writeWAV(opts.out, eng.SampleRate(), rep.samples); err != nil {
		return err
	}

	length := time.Duration(len(rep.samples)) * time.Second / time.Duration(eng.SampleRate())
	log.Info("mix written",
		zap.String("path", opts.out),
		zap.Duration("length", length),
		zap.Int("plays", rep.plays),
		zap.Int("dropped", rep.dropped))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d played, %d dropped\n", opts.out, length, rep.plays, rep.dropped)

	return nil
}
