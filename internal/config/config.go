// Package config loads dynget settings from a YAML file and the environment
// and turns them into client options.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/dynhttp/client"
	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/download"
	"github.com/adamwoolhether/dynhttp/client/mimes"
	"github.com/adamwoolhether/dynhttp/client/throttle"
)

// Environment variables overriding file settings.
const (
	EnvUserAgent   = "DYNHTTP_USER_AGENT"
	EnvTimeout     = "DYNHTTP_TIMEOUT"
	EnvLogLevel    = "DYNHTTP_LOG_LEVEL"
	EnvDownloadDir = "DYNHTTP_DOWNLOAD_DIR"
	EnvConcurrency = "DYNHTTP_CONCURRENCY"
)

// ErrMissingSecret is returned when a token or signing key variable is unset.
var ErrMissingSecret = errors.New("secret environment variable is empty")

// Config is the complete set of dynget settings.
type Config struct {
	LogLevel string           `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Client   Client           `yaml:"client"`
	Throttle *throttle.Config `yaml:"throttle" validate:"omitempty"`
	Augment  Augment          `yaml:"augment"`
	Download Download         `yaml:"download"`
}

// Client holds transport level settings.
type Client struct {
	Timeout           time.Duration `yaml:"timeout" validate:"gte=0"`
	UserAgent         string        `yaml:"user_agent"`
	NoFollowRedirects bool          `yaml:"no_follow_redirects"`
}

// Param is a single fixed parameter.
type Param struct {
	Name  string `yaml:"name" validate:"required"`
	Value string `yaml:"value"`
}

// Augment selects the policies run on every request, in this order:
// static parameters, timestamp, token, signature.
type Augment struct {
	Static    []Param `yaml:"static" validate:"dive"`
	Timestamp string  `yaml:"timestamp"`
	Token     *Secret `yaml:"token" validate:"omitempty"`
	Signature *Secret `yaml:"signature" validate:"omitempty"`
}

// Secret names a parameter whose value, or key, is read from the
// environment when the augmenter is built.
type Secret struct {
	Param string `yaml:"param" validate:"required"`
	Env   string `yaml:"env" validate:"required"`
}

// Download holds downloader settings.
type Download struct {
	Dir          string `yaml:"dir"`
	Concurrency  int    `yaml:"concurrency" validate:"gte=0"`
	ChunkSize    int    `yaml:"chunk_size" validate:"omitempty,min=512"`
	Sniff        bool   `yaml:"sniff"`
	ProgressLog  bool   `yaml:"progress_log"`
	ContentTypes string `yaml:"content_types" validate:"omitempty,file"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Client: Client{
			Timeout:   30 * time.Second,
			UserAgent: "dynget/1.0",
		},
		Download: Download{
			Concurrency: 4,
			ChunkSize:   download.DefaultChunkSize,
		},
	}
}

// Load reads the YAML file at path on top of [Default], then applies the
// environment. The envFiles are loaded into the environment first without
// replacing variables that are already set. An empty path skips the file.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := decode(bytes.NewReader(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvUserAgent); ok {
		cfg.Client.UserAgent = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Client.Timeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvDownloadDir); ok {
		cfg.Download.Dir = v
	}
	if v, ok := os.LookupEnv(EnvConcurrency); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		cfg.Download.Concurrency = n
	}

	return nil
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Augmenter builds the configured policy chain. It returns nil when no
// policy is configured.
func (c *Config) Augmenter() (augment.Augmenter, error) {
	var chain []augment.Augmenter

	if len(c.Augment.Static) > 0 {
		kv := make([]string, 0, len(c.Augment.Static)*2)
		for _, p := range c.Augment.Static {
			kv = append(kv, p.Name, p.Value)
		}
		chain = append(chain, augment.Static(kv...))
	}

	if c.Augment.Timestamp != "" {
		chain = append(chain, augment.Timestamp(c.Augment.Timestamp, nil))
	}

	if tok := c.Augment.Token; tok != nil {
		env := tok.Env
		chain = append(chain, augment.Token(tok.Param, func(context.Context) (string, error) {
			v := os.Getenv(env)
			if v == "" {
				return "", fmt.Errorf("%s: %w", env, ErrMissingSecret)
			}
			return v, nil
		}))
	}

	if sig := c.Augment.Signature; sig != nil {
		key := os.Getenv(sig.Env)
		if key == "" {
			return nil, fmt.Errorf("signature key %s: %w", sig.Env, ErrMissingSecret)
		}
		chain = append(chain, augment.HMACSignature(sig.Param, []byte(key)))
	}

	switch len(chain) {
	case 0:
		return nil, nil
	case 1:
		return chain[0], nil
	default:
		return augment.Chain(chain...), nil
	}
}

// ClientOptions translates c into options for [client.Build]. When an
// augmenter is configured and decorate is non-nil, the client runs
// decorate(augmenter) instead. A configured content type file is loaded into
// the process-wide MIME table.
func (c *Config) ClientOptions(logger *slog.Logger, decorate func(augment.Augmenter) augment.Augmenter) ([]client.Option, error) {
	opts := []client.Option{
		client.WithTimeout(c.Client.Timeout),
	}
	if logger != nil {
		opts = append(opts, client.WithLogger(logger))
	}
	if c.Client.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.Client.UserAgent))
	}
	if c.Client.NoFollowRedirects {
		opts = append(opts, client.WithNoFollowRedirects())
	}
	if c.Throttle != nil {
		opts = append(opts, client.WithThrottleConfig(*c.Throttle))
	}

	a, err := c.Augmenter()
	if err != nil {
		return nil, err
	}
	if a != nil {
		if decorate != nil {
			a = decorate(a)
		}
		opts = append(opts, client.WithAugmenter(a))
	}

	if c.Download.ContentTypes != "" {
		if _, err := mimes.Default().LoadOverridesFile(c.Download.ContentTypes); err != nil {
			return nil, err
		}
	}

	opts = append(opts, client.WithDownloader(c.downloadOptions()...))

	return opts, nil
}

func (c *Config) downloadOptions() []download.Option {
	var opts []download.Option

	if dir := c.Download.Dir; dir != "" {
		opts = append(opts, download.WithDirProvider(func() (string, error) { return dir, nil }))
	}
	if c.Download.Concurrency > 0 {
		opts = append(opts, download.WithConcurrency(c.Download.Concurrency))
	}
	if c.Download.ChunkSize > 0 {
		opts = append(opts, download.WithChunkSize(c.Download.ChunkSize))
	}
	if c.Download.Sniff {
		opts = append(opts, download.WithContentSniffing())
	}
	if c.Download.ProgressLog {
		opts = append(opts, download.WithProgressLog())
	}

	return opts
}
