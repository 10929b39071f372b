package orcas

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to fetch reference data from the backend

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
	dir  string
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// one key per day, so the local copy expires every day.
	key := fmt.Sprintf("%s %s %s", time.Now().Format(time.DateOnly), req.Method, req.URL.String())
	key = fmt.Sprintf("orcas-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// a failed cache write is not a failed request.
	_ = c.put(key, resp)
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0644)
}

// daily returns a client with a cache all with daily expire
func daily(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &diskCache{base: http.DefaultTransport, dir: os.TempDir()},
	}
}

// wget performs an HTTP GET request and returns the body.
func wget(ctx context.Context, client *http.Client, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
