package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/famomatic/ytcap/client"
)

type commandContext struct {
	v *viper.Viper
}

func newCommandContext() *commandContext {
	v := viper.New()
	v.SetEnvPrefix("YTCAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("lang", "en")
	v.SetDefault("timeout", "30s")
	v.SetDefault("retries", 2)
	v.SetDefault("log-level", "warn")
	v.SetDefault("listen", ":8080")
	return &commandContext{v: v}
}

func (c *commandContext) clientConfig() client.Config {
	return client.Config{
		ProxyURL:           c.v.GetString("proxy"),
		RequestTimeout:     c.v.GetDuration("timeout"),
		MaxRetries:         c.v.GetInt("retries"),
		RequestsPerSecond:  c.v.GetFloat64("rate"),
		Language:           c.v.GetString("lang"),
		BestEffortLanguage: c.v.GetBool("best-effort-lang"),
		ClientOverrides:    c.v.GetStringSlice("clients"),
		ClientSkip:         c.v.GetStringSlice("skip-clients"),
		Logger:             client.NewZerologLogger(c.logger()),
	}
}

func (c *commandContext) logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "ytcap",
		Short:         "Extract YouTube captions and video metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("proxy", "", "Proxy URL for outbound requests")
	flags.String("lang", "en", "Caption language code")
	flags.Bool("best-effort-lang", false, "Fall back to the first caption track when the language has no match")
	flags.Duration("timeout", 30*time.Second, "Overall request timeout")
	flags.Int("retries", 2, "Retry attempts per upstream call")
	flags.Float64("rate", 0, "Outbound requests per second (0 disables pacing)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringSlice("clients", nil, "Impersonation profile trial order")
	flags.StringSlice("skip-clients", nil, "Impersonation profiles to skip")
	_ = ctx.v.BindPFlags(flags)

	rootCmd.AddCommand(newSubtitlesCommand(ctx))
	rootCmd.AddCommand(newDetailsCommand(ctx))
	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newClientsCommand())
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
