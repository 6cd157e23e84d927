package cli

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/dynhttp/client"
	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/request"
)

var errNoAugmenter = errors.New("no augmentation configured")

type signFlags struct {
	method string
	form   []string
	json   string
}

func newSignCmd(a *app) *cobra.Command {
	var f signFlags

	cmd := &cobra.Command{
		Use:   "sign URL",
		Short: "Print a request as it would be sent after augmentation",
		Long: `Run the configured augmentation on a request without sending it and
print the resulting method, URL and body. Form requests also print the
informational URL carrying every form parameter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(cmd, a, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.method, "method", "X", http.MethodGet, "request method")
	cmd.Flags().StringArrayVarP(&f.form, "form", "F", nil, "form field name=value, repeatable")
	cmd.Flags().StringVar(&f.json, "json", "", "raw JSON body")

	return cmd
}

func runSign(cmd *cobra.Command, a *app, f signFlags, raw string) error {
	aug, err := a.cfg.Augmenter()
	if err != nil {
		return err
	}
	if aug == nil {
		return errNoAugmenter
	}

	p, err := augment.NewPipeline(a.collector.Augmenter(aug), augment.WithLogger(a.logger))
	if err != nil {
		return err
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", raw, err)
	}

	var opts []client.RequestOption
	if len(f.form) > 0 {
		kv := make([]string, 0, len(f.form)*2)
		for _, field := range f.form {
			name, value, ok := strings.Cut(field, "=")
			if !ok {
				return fmt.Errorf("form field %q: missing '='", field)
			}
			kv = append(kv, name, value)
		}
		opts = append(opts, client.WithForm(kv...))
	}
	if f.json != "" {
		opts = append(opts, client.WithBody(request.JSON(f.json)))
	}

	o, err := client.Request(u, strings.ToUpper(f.method), opts...)
	if err != nil {
		return err
	}

	res, err := p.Apply(cmd.Context(), o)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", res.Request.Method(), res.Request.URL())
	fmt.Fprintf(w, "encoding: %s\n", res.Encoding)
	if len(res.Added) > 0 {
		fmt.Fprintf(w, "added: %s\n", strings.Join(res.Added, ", "))
	}
	if body, err := res.Request.Body().Encode(); err == nil && len(body) > 0 {
		fmt.Fprintf(w, "body: %s\n", strings.TrimSpace(string(body)))
	}
	if res.InfoURL != "" {
		fmt.Fprintf(w, "info: %s\n", res.InfoURL)
	}

	return a.finish()
}
