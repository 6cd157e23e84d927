package download_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/adamwoolhether/dynhttp/client/download"
)

func newDownloader(t *testing.T, fsys afero.Fs, opts ...download.Option) *download.Downloader {
	t.Helper()

	d, err := download.New(append([]download.Option{download.WithFs(fsys)}, opts...)...)
	if err != nil {
		t.Fatalf("creating downloader: %v", err)
	}
	return d
}

// collect waits for r and returns every event the recorder saw, checking
// the ordering guarantees along the way.
func collect(t *testing.T, r *download.Result, ch chan download.Event) []download.Event {
	t.Helper()

	_ = r.Err()
	close(ch)

	var events []download.Event
	for ev := range ch {
		events = append(events, ev)
	}

	if len(events) < 2 {
		t.Fatalf("expected at least start and a terminal event, got %v", events)
	}
	if events[0].Kind != download.EventStart {
		t.Errorf("expected first event to be start, got %s", events[0].Kind)
	}

	var terminals int
	last := -1
	for i, ev := range events {
		if ev.Terminal() {
			terminals++
			if i != len(events)-1 {
				t.Errorf("event %d delivered after terminal: %v", i, events[i+1:])
			}
		}
		if ev.Kind == download.EventProgress {
			if ev.Percent < last {
				t.Errorf("percent decreased from %d to %d", last, ev.Percent)
			}
			last = ev.Percent
		}
		if ev.Tag != r.Tag() {
			t.Errorf("event %d tagged %q, want %q", i, ev.Tag, r.Tag())
		}
	}
	if terminals != 1 {
		t.Errorf("expected exactly one terminal event, got %d", terminals)
	}

	return events
}

func percents(events []download.Event) []int {
	var out []int
	for _, ev := range events {
		if ev.Kind == download.EventProgress {
			out = append(out, ev.Percent)
		}
	}
	return out
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(b)
}

func TestDownloader_Start(t *testing.T) {
	const body = "0123456789"

	testCases := []struct {
		name    string
		total   int64
		body    string
		chunk   int
		expPcts []int
	}{
		{name: "declared size", total: 10, body: body, chunk: 3, expPcts: []int{30, 60, 90, 100}},
		{name: "chunk larger than body", total: 10, body: body, chunk: 4096, expPcts: []int{100}},
		{name: "unknown size", total: -1, body: body, chunk: 3, expPcts: []int{100, 100, 100, 100}},
		{name: "zero declared size", total: 0, body: body, chunk: 3, expPcts: []int{100, 100, 100, 100}},
		{name: "empty body", total: 0, body: "", chunk: 3, expPcts: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			d := newDownloader(t, fsys, download.WithChunkSize(tc.chunk))

			ch := make(chan download.Event, 64)
			r, err := d.Start(t.Context(), download.Source{
				Tag:           "t1",
				Body:          strings.NewReader(tc.body),
				ContentLength: tc.total,
				Dir:           "/dl",
				Name:          "report.bin",
			}, download.Recorder(ch))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			events := collect(t, r, ch)
			if err := r.Err(); err != nil {
				t.Fatalf("unexpected download error: %v", err)
			}

			if diff := cmp.Diff(tc.expPcts, percents(events)); diff != "" {
				t.Errorf("percents mismatch (-want +got):\n%s", diff)
			}

			if n := len(tc.body); n > 0 {
				last := events[len(events)-2]
				if last.Kind != download.EventProgress || last.Read != int64(n) {
					t.Errorf("expected final progress to report %d bytes, got %+v", n, last)
				}
				if tc.total > 0 && last.Total != tc.total {
					t.Errorf("expected progress total %d, got %d", tc.total, last.Total)
				}
			}

			final := events[len(events)-1]
			if final.Kind != download.EventSuccess || final.Path != "/dl/report.bin" {
				t.Errorf("unexpected terminal event %+v", final)
			}
			if events[0].Total != tc.total {
				t.Errorf("expected start total %d, got %d", tc.total, events[0].Total)
			}
			if got := readFile(t, fsys, r.Path()); got != tc.body {
				t.Errorf("expected file %q, got %q", tc.body, got)
			}
		})
	}
}

func TestDownloader_ProgressIsBucketed(t *testing.T) {
	payload := make([]byte, 1<<20)
	if _, err := rand.Read(payload); err != nil {
		t.Fatal(err)
	}

	fsys := afero.NewMemMapFs()
	d := newDownloader(t, fsys)

	ch := make(chan download.Event, 256)
	r, err := d.Start(t.Context(), download.Source{
		Body:          bytes.NewReader(payload),
		ContentLength: int64(len(payload)),
		Dir:           "/dl",
		Name:          "blob.bin",
	}, download.Recorder(ch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pcts := percents(collect(t, r, ch))
	if len(pcts) == 0 || len(pcts) > 101 {
		t.Fatalf("expected between 1 and 101 progress reports, got %d", len(pcts))
	}
	for i := 1; i < len(pcts); i++ {
		if pcts[i] <= pcts[i-1] {
			t.Errorf("expected one report per whole percent, got %d after %d", pcts[i], pcts[i-1])
		}
	}
	if pcts[len(pcts)-1] != 100 {
		t.Errorf("expected final percent 100, got %d", pcts[len(pcts)-1])
	}

	if got := readFile(t, fsys, "/dl/blob.bin"); got != string(payload) {
		t.Error("written file differs from payload")
	}
}

func TestDownloader_ReplacesExistingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/dl/a.txt", []byte("stale contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := newDownloader(t, fsys)
	path, err := d.Download(t.Context(), download.Source{
		Body:          strings.NewReader("fresh"),
		ContentLength: 5,
		Dir:           "/dl",
		Name:          "a.txt",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, fsys, path); got != "fresh" {
		t.Errorf("expected replaced file, got %q", got)
	}
}

var errBoom = errors.New("boom")

// failingReader yields data once and then fails.
type failingReader struct {
	data []byte
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, errBoom
	}
	r.read = true
	return copy(p, r.data), nil
}

type closeTracker struct {
	io.Reader
	closed atomic.Int32
}

func (c *closeTracker) Close() error {
	c.closed.Add(1)
	return nil
}

func TestDownloader_ReadError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	d := newDownloader(t, fsys)

	body := &closeTracker{Reader: &failingReader{data: []byte("part")}}
	ch := make(chan download.Event, 16)
	r, err := d.Start(t.Context(), download.Source{
		Body:          body,
		ContentLength: 100,
		Dir:           "/dl",
		Name:          "partial.bin",
	}, download.Recorder(ch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := collect(t, r, ch)
	final := events[len(events)-1]
	if final.Kind != download.EventError {
		t.Fatalf("expected error outcome, got %s", final.Kind)
	}

	var derr *download.Error
	if !errors.As(r.Err(), &derr) || derr.Kind != download.KindRead {
		t.Fatalf("expected read error, got %v", r.Err())
	}
	if !errors.Is(final.Err, errBoom) {
		t.Errorf("expected observer error to wrap cause, got %v", final.Err)
	}
	if r.Path() != "" {
		t.Errorf("expected empty path on failure, got %q", r.Path())
	}

	if got := readFile(t, fsys, "/dl/partial.bin"); got != "part" {
		t.Errorf("expected partial file to be kept, got %q", got)
	}
	if body.closed.Load() != 1 {
		t.Errorf("expected body closed once, got %d", body.closed.Load())
	}
}

func TestDownloader_DestinationErrors(t *testing.T) {
	testCases := []struct {
		name string
		fsys afero.Fs
		opts []download.Option
		dir  string
	}{
		{
			name: "read only fs",
			fsys: afero.NewReadOnlyFs(afero.NewMemMapFs()),
			dir:  "/dl",
		},
		{
			name: "dir provider fails",
			fsys: afero.NewMemMapFs(),
			opts: []download.Option{download.WithDirProvider(func() (string, error) {
				return "", errBoom
			})},
		},
		{
			name: "dir provider empty",
			fsys: afero.NewMemMapFs(),
			opts: []download.Option{download.WithDirProvider(func() (string, error) {
				return "", nil
			})},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDownloader(t, tc.fsys, tc.opts...)

			body := &closeTracker{Reader: strings.NewReader("data")}
			ch := make(chan download.Event, 16)
			r, err := d.Start(t.Context(), download.Source{Body: body, ContentLength: 4, Dir: tc.dir, Name: "f.bin"}, download.Recorder(ch))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			events := collect(t, r, ch)
			if len(events) != 2 {
				t.Errorf("expected start and error only, got %v", events)
			}

			var derr *download.Error
			if !errors.As(r.Err(), &derr) || derr.Kind != download.KindDestination {
				t.Errorf("expected destination error, got %v", r.Err())
			}
			if body.closed.Load() != 1 {
				t.Errorf("expected body closed once, got %d", body.closed.Load())
			}
		})
	}
}

func TestDownloader_DefaultDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	d := newDownloader(t, fsys)

	path, err := d.Download(t.Context(), download.Source{
		Body: strings.NewReader("x"),
		URL:  "https://x.com/a/report.pdf",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir, _ := download.DefaultDir()
	if exp := filepath.Join(dir, "report.pdf"); path != exp {
		t.Errorf("expected %q, got %q", exp, path)
	}
}

func TestDownloader_Checksum(t *testing.T) {
	const body = "checksum me"
	sum := sha256.Sum256([]byte(body))

	testCases := []struct {
		name     string
		expected string
		wantErr  error
	}{
		{name: "match", expected: hex.EncodeToString(sum[:])},
		{name: "match upper case", expected: strings.ToUpper(hex.EncodeToString(sum[:]))},
		{name: "mismatch", expected: strings.Repeat("0", 64), wantErr: download.ErrChecksumMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDownloader(t, afero.NewMemMapFs())

			_, err := d.Download(t.Context(), download.Source{
				Body: strings.NewReader(body),
				Dir:  "/dl",
				Name: "c.txt",
			}, nil, download.WithChecksum(sha256.New(), tc.expected))

			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var derr *download.Error
			if !errors.Is(err, tc.wantErr) || !errors.As(err, &derr) || derr.Kind != download.KindChecksum {
				t.Errorf("expected checksum error, got %v", err)
			}
		})
	}
}

func TestDownloader_Cancel(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs())

	pr, pw := io.Pipe()
	progressed := make(chan struct{})
	var once atomic.Bool
	obs := download.ObserverFuncs{
		Progress: func(string, int64, int64, int) {
			if once.CompareAndSwap(false, true) {
				close(progressed)
			}
		},
	}

	r, err := d.Start(t.Context(), download.Source{Body: pr, ContentLength: -1, Dir: "/dl", Name: "stream.bin"}, obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	go func() { _, _ = pw.Write([]byte("first chunk")) }()

	select {
	case <-progressed:
	case <-time.After(time.Second):
		t.Fatal("no progress before cancel")
	}
	r.Cancel()

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("download did not stop after cancel")
	}

	var derr *download.Error
	if !errors.As(r.Err(), &derr) || derr.Kind != download.KindCancelled {
		t.Fatalf("expected cancelled error, got %v", r.Err())
	}
	if !errors.Is(r.Err(), download.ErrDownloadCancelled) {
		t.Errorf("expected ErrDownloadCancelled, got %v", r.Err())
	}
}

func TestDownloader_RejectedWhileQueued(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs(), download.WithConcurrency(1))

	pr, pw := io.Pipe()
	first, err := d.Start(t.Context(), download.Source{Body: pr, Dir: "/dl", Name: "slow.bin"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	ch := make(chan download.Event, 16)
	second, err := d.Start(ctx, download.Source{Body: strings.NewReader("x"), Dir: "/dl", Name: "never.bin"}, download.Recorder(ch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := collect(t, second, ch)
	if len(events) != 2 || events[1].Kind != download.EventError {
		t.Errorf("expected start then error, got %v", events)
	}
	if !errors.Is(second.Err(), download.ErrDownloadCancelled) {
		t.Errorf("expected ErrDownloadCancelled, got %v", second.Err())
	}

	_ = pw.Close()
	if err := first.Err(); err != nil {
		t.Errorf("expected first download to finish, got %v", err)
	}
}

func TestDownloader_ObserverPanic(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs())

	var succeeded atomic.Bool
	obs := download.ObserverFuncs{
		Progress: func(string, int64, int64, int) { panic("observer bug") },
		Success:  func(string, string) { succeeded.Store(true) },
	}

	if _, err := d.Download(t.Context(), download.Source{Body: strings.NewReader("abc"), Dir: "/dl", Name: "p.txt"}, obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !succeeded.Load() {
		t.Error("expected success to be delivered after a panicking callback")
	}
}

func TestDownloader_Loop(t *testing.T) {
	loop := download.NewLoop(8)
	d := newDownloader(t, afero.NewMemMapFs(), download.WithDispatcher(loop))

	var active atomic.Int32
	var overlapped atomic.Bool
	ch := make(chan download.Event, 64)
	rec := download.Recorder(ch)
	obs := download.ObserverFuncs{
		Start: func(tag string, total int64) {
			if active.Add(1) > 1 {
				overlapped.Store(true)
			}
			rec.OnStart(tag, total)
			active.Add(-1)
		},
		Success: func(tag, path string) {
			if active.Add(1) > 1 {
				overlapped.Store(true)
			}
			rec.OnSuccess(tag, path)
			active.Add(-1)
		},
	}

	var results []*download.Result
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		r, err := d.Start(t.Context(), download.Source{Body: strings.NewReader(name), Dir: "/dl", Name: name}, obs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		results = append(results, r)
	}
	if err := d.Queue().Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loop.Close()
	close(ch)

	perTag := map[string][]download.EventKind{}
	for ev := range ch {
		perTag[ev.Tag] = append(perTag[ev.Tag], ev.Kind)
	}
	for _, r := range results {
		if diff := cmp.Diff([]download.EventKind{download.EventStart, download.EventSuccess}, perTag[r.Tag()]); diff != "" {
			t.Errorf("tag %s events mismatch (-want +got):\n%s", r.Tag(), diff)
		}
	}
	if overlapped.Load() {
		t.Error("expected loop callbacks to run one at a time")
	}
}

func TestDownloader_ClosedDispatcher(t *testing.T) {
	closed := download.NewLoop(1)
	closed.Close()
	closed.Close()

	testCases := []struct {
		name       string
		dispatcher download.Dispatcher
	}{
		{name: "closed loop", dispatcher: closed},
		{name: "panicking dispatcher", dispatcher: download.DispatcherFunc(func(func()) { panic("dispatcher gone") })},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			d := newDownloader(t, fsys, download.WithDispatcher(tc.dispatcher))

			var called atomic.Bool
			obs := download.ObserverFuncs{
				Start:   func(string, int64) { called.Store(true) },
				Success: func(string, string) { called.Store(true) },
			}

			path, err := d.Download(t.Context(), download.Source{Body: strings.NewReader("late"), Dir: "/dl", Name: "late.txt"}, obs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readFile(t, fsys, path); got != "late" {
				t.Errorf("expected file %q, got %q", "late", got)
			}
			if called.Load() {
				t.Error("expected no callbacks through the dispatcher")
			}
		})
	}
}

func TestDownloader_ContentSniffing(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	fsys := afero.NewMemMapFs()
	d := newDownloader(t, fsys,
		download.WithContentSniffing(),
		download.WithNameResolver(download.NameResolver{Now: fixedClock}),
	)

	path, err := d.Download(t.Context(), download.Source{Body: bytes.NewReader(png), Dir: "/dl"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/dl/1700000000123.png" {
		t.Errorf("expected sniffed png name, got %q", path)
	}
	if got := readFile(t, fsys, path); got != string(png) {
		t.Error("sniffing consumed part of the body")
	}
}

func TestDownloader_SniffingReportsStartBeforeFirstRead(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs(), download.WithContentSniffing())

	pr, pw := io.Pipe()
	started := make(chan struct{})
	obs := download.ObserverFuncs{
		Start: func(string, int64) { close(started) },
	}

	r, err := d.Start(t.Context(), download.Source{Body: pr, ContentLength: -1, Dir: "/dl", Name: "late"}, obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("start not delivered while the body had no bytes")
	}

	go func() {
		_, _ = pw.Write([]byte("%PDF-1.7\n"))
		_ = pw.Close()
	}()
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(r.Path()) != ".pdf" {
		t.Errorf("expected sniffed pdf extension, got %q", r.Path())
	}
}

func TestDownloader_StartValidation(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs())

	if _, err := d.Start(t.Context(), download.Source{}, nil); !errors.Is(err, download.ErrNilBody) {
		t.Errorf("expected ErrNilBody, got %v", err)
	}
	if _, err := d.Start(t.Context(), download.Source{Body: strings.NewReader("")}, nil, download.WithChecksum(nil, "ab")); err == nil {
		t.Error("expected option error")
	}
	if _, err := download.New(download.WithChunkSize(0)); err == nil {
		t.Error("expected chunk size error")
	}
}

func TestDownloader_GeneratedTag(t *testing.T) {
	d := newDownloader(t, afero.NewMemMapFs())

	r, err := d.Start(t.Context(), download.Source{Body: strings.NewReader("x"), Dir: "/dl", Name: "x"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(r.Tag()); err != nil {
		t.Errorf("expected uuid tag, got %q", r.Tag())
	}
	if err := r.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if r.Path() != "/dl/x.tmpl" {
		t.Errorf("expected fallback extension, got %q", r.Path())
	}
}
