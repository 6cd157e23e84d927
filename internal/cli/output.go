package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/adamwoolhether/dynhttp/client/download"
)

// progressPrinter writes one line per notification. Downloads of a batch
// report concurrently, so writes are serialized.
type progressPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func (p *progressPrinter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, format, args...)
}

func (p *progressPrinter) OnStart(tag string, total int64) {
	if total > 0 {
		p.printf("%s: started (%d bytes)\n", tag, total)
		return
	}
	p.printf("%s: started\n", tag)
}

func (p *progressPrinter) OnProgress(tag string, read, _ int64, percent int) {
	p.printf("%s: %3d%% %d bytes\n", tag, percent, read)
}

func (p *progressPrinter) OnSuccess(tag, path string) {
	p.printf("%s: saved %s\n", tag, path)
}

func (p *progressPrinter) OnError(tag string, err error) {
	p.printf("%s: failed: %v\n", tag, err)
}

var _ download.Observer = (*progressPrinter)(nil)

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
