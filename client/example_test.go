package client_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adamwoolhether/dynhttp/client"
	"github.com/adamwoolhether/dynhttp/client/augment"
)

func ExampleBuild() {
	c, err := client.Build(
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleURL() {
	u := client.URL("https", "example.com", "/api/v1",
		client.WithPort(8443),
		client.WithQueryStrings(map[string]string{"key": "value"}),
	)

	fmt.Println(u.String())
	// Output: https://example.com:8443/api/v1?key=value
}

func ExampleRequest() {
	type payload struct {
		Name string `json:"name"`
	}

	u := client.URL("https", "example.com", "/users")

	req, err := client.Request(u, http.MethodPost,
		client.WithPayload(payload{Name: "alice"}),
		client.WithHeaders(map[string][]string{"X-Request-ID": {"abc123"}}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(req.Method(), req.URL().Path, req.Body().Kind())
	// Output: POST /users object
}

func ExampleClient_Do() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer ts.Close()

	c, _ := client.Build()
	u, _ := url.Parse(ts.URL)
	req, _ := client.Request(u, http.MethodGet)

	var resp struct{ Status string }
	if err := c.Do(context.Background(), req, http.StatusOK, client.WithDestination(&resp)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.Status)
	// Output: ok
}

func ExampleWithAugmenter() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	fixed := func() time.Time { return time.UnixMilli(1700000000000) }
	c, _ := client.Build(client.WithAugmenter(augment.Chain(
		augment.Static("app", "demo"),
		augment.Timestamp("ts", fixed),
	)))

	u, _ := url.Parse(ts.URL + "/items?page=2")
	req, _ := client.Request(u, http.MethodGet)

	if err := c.Do(context.Background(), req, http.StatusOK); err != nil {
		fmt.Println("error:", err)
	}
	// Output: page=2&app=demo&ts=1700000000000
}

func ExampleClient_Download() {
	body := []byte("file contents")
	sum := sha256.Sum256(body)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	dir, err := os.MkdirTemp("", "example-download")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	c, _ := client.Build()
	u, _ := url.Parse(ts.URL + "/notes")
	req, _ := client.Request(u, http.MethodGet)

	path, err := c.Download(context.Background(), req, http.StatusOK, nil,
		client.WithDir(dir),
		client.WithChecksum(sha256.New(), hex.EncodeToString(sum[:])),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	data, _ := os.ReadFile(path)
	fmt.Println(filepath.Base(path), string(data))
	// Output: notes.txt file contents
}
