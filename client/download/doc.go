// Package download streams response bodies to disk in fixed-size chunks and
// reports progress to an [Observer].
//
// # Single Download
//
// [Downloader.Start] resolves the destination, replaces any file already
// there and copies the body on its own goroutine:
//
//	d, err := download.New(download.WithDirProvider(func() (string, error) {
//		return "/var/cache/app", nil
//	}))
//	r, err := d.Start(ctx, download.Source{
//		Body:          resp.Body,
//		ContentLength: resp.ContentLength,
//		ContentType:   resp.Header.Get("Content-Type"),
//		URL:           resp.Request.URL.String(),
//	}, observer)
//	path, err := r.Path(), r.Err()
//
// # Naming
//
// [NameResolver] picks a file name from an explicit name, the source URL and
// the content type, in that order, and never fails.
//
// # Notifications
//
// The copy loop never calls the observer directly. Events are queued to a
// notifier goroutine that hands them to a [Dispatcher], so observers can be
// moved onto a single [Loop] shared by many downloads.
//
// # Progress
//
// Progress is reported at most once per whole percent. When the size is
// unknown or zero every report carries 100 percent. A failed download leaves
// its partial file on disk.
package download
