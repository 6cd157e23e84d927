package download

import (
	"fmt"
	"log/slog"
	"time"
)

// transferState tracks one download from the first byte to the terminal
// outcome. It is owned by the copy loop.
type transferState struct {
	path   string
	read   int64
	total  int64
	bucket int
}

func newTransferState(path string, total int64) *transferState {
	if total < 0 {
		total = -1
	}
	return &transferState{path: path, total: total}
}

// percent is floor(read*100/total), capped at 100. A total that is unknown
// or zero always yields 100.
func (s *transferState) percent() int {
	if s.total <= 0 {
		return 100
	}

	p := s.read * 100 / s.total
	if p > 100 {
		return 100
	}
	return int(p)
}

// advance accounts for n more bytes and reports whether the new percent
// reached the next whole-percent bucket. Without a known total every chunk
// is reported, so the byte count keeps moving while the percent stays 100.
func (s *transferState) advance(n int) (int, bool) {
	s.read += int64(n)

	if s.total <= 0 {
		return 100, true
	}

	p := s.percent()
	if p < s.bucket {
		return p, false
	}
	s.bucket = p + 1

	return p, true
}

// rateLogger logs transfer progress at most once per interval.
type rateLogger struct {
	logger    *slog.Logger
	tag       string
	interval  time.Duration
	startTime time.Time
	lastLog   time.Time
}

func newRateLogger(logger *slog.Logger, tag string) *rateLogger {
	now := time.Now()
	return &rateLogger{
		logger:    logger,
		tag:       tag,
		interval:  time.Second,
		startTime: now,
		lastLog:   now,
	}
}

func (rl *rateLogger) observe(s *transferState) {
	if rl == nil {
		return
	}

	if time.Since(rl.lastLog) >= rl.interval {
		rl.lastLog = time.Now()
		rl.log("downloading", s)
	}
}

func (rl *rateLogger) complete(s *transferState) {
	if rl == nil {
		return
	}
	rl.log("download complete", s)
}

func (rl *rateLogger) log(msg string, s *transferState) {
	elapsed := time.Since(rl.startTime)
	attrs := []any{
		"tag", rl.tag,
		"progress", fmt.Sprintf("%d%%", s.percent()),
		"elapsed", elapsed.Round(time.Millisecond),
		"transferred", s.read,
		"total", s.total,
		"mbps", fmt.Sprintf("%.2f", float64(s.read)/max(elapsed.Seconds(), 1e-9)/(1024*1024)),
	}
	rl.logger.Info(msg, attrs...)
}
