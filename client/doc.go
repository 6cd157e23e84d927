// Package client provides a configurable HTTP client built on [net/http]
// that augments outgoing requests with dynamic parameters and streams
// downloads to disk.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithAugmenter(augment.Chain(
//			augment.Timestamp("ts", nil),
//			augment.HMACSignature("sig", key),
//		)),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]. GET
// requests have the augmented parameters appended to their query, form and
// multipart bodies receive them as fields:
//
//	u := client.URL("https", "api.example.com", "/v1/resource")
//	req, err := client.Request(u, http.MethodPost, client.WithForm("q", "go"))
//	err = c.Do(ctx, req, http.StatusOK, client.WithDestination(&result))
//
// # Downloading Files
//
// Stream a response body to disk with optional checksum verification and
// progress notifications:
//
//	path, err := c.Download(ctx, req, http.StatusOK, observer,
//		client.WithDir("/tmp"),
//		client.WithChecksum(sha256.New(), expectedHex),
//	)
//
// [Client.DownloadAsync] returns as soon as the response headers arrived.
// Use [WithDownloader] with [download.WithConcurrency] to bound how many
// bodies are copied at once, and [Client.Downloads] to wait for them all.
//
// For lower-level control see the
// [github.com/adamwoolhether/dynhttp/client/download] and
// [github.com/adamwoolhether/dynhttp/client/augment] packages.
package client
