package cli

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/dynhttp/client"
	"github.com/adamwoolhether/dynhttp/client/download"
)

type getFlags struct {
	dir      string
	name     string
	checksum string
	status   int
	quiet    bool
}

func newGetCmd(a *app) *cobra.Command {
	var f getFlags

	cmd := &cobra.Command{
		Use:   "get URL...",
		Short: "Download one or more URLs",
		Long: `Download each URL to disk, printing progress as it arrives. Every
request is augmented with the configured parameters. Downloads run
concurrently up to download.concurrency.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 && (f.name != "" || f.checksum != "") {
				return errors.New("--name and --sha256 apply to a single URL")
			}
			return runGet(cmd, a, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "destination directory (default: download.dir)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "file name (default: resolved from URL and content type)")
	cmd.Flags().StringVar(&f.checksum, "sha256", "", "expected hex SHA-256 of the file")
	cmd.Flags().IntVar(&f.status, "status", http.StatusOK, "expected response status")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print progress")

	return cmd
}

func runGet(cmd *cobra.Command, a *app, f getFlags, args []string) error {
	c, err := a.client()
	if err != nil {
		return err
	}

	var obs download.Observer = &progressPrinter{w: cmd.OutOrStdout()}
	if f.quiet {
		obs = download.ObserverFuncs{}
	}
	obs = a.collector.Observe(obs)

	var opts []client.DownloadOption
	if f.dir != "" {
		opts = append(opts, client.WithDir(f.dir))
	}
	if f.name != "" {
		opts = append(opts, client.WithFileName(f.name))
	}
	if f.checksum != "" {
		opts = append(opts, client.WithChecksum(sha256.New(), f.checksum))
	}

	var errs []error
	for _, raw := range args {
		u, err := url.ParseRequestURI(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("parsing %q: %w", raw, err))
			continue
		}

		req, err := c.Request(u, http.MethodGet)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		tagged := append([]client.DownloadOption{client.WithTag(raw)}, opts...)
		if _, err := c.DownloadAsync(cmd.Context(), req, f.status, obs, tagged...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", raw, err))
		}
	}

	if err := c.Downloads().Wait(); err != nil {
		errs = append(errs, err)
	}

	if err := a.finish(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
