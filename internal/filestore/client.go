// Package filestore talks to the upload server that owns stored media files.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mediasocial/internal/common"
	"mediasocial/internal/config"
)

// DeletedMessage is the only body the upload server sends for a confirmed delete.
const DeletedMessage = "File deleted"

// Client removes files from the upload server.
type Client interface {
	// Delete asks the upload server to remove filename, authenticating with
	// the caller's bearer token. Anything short of a confirmed delete is a
	// *common.RemoteDeleteError. The call is never retried.
	Delete(ctx context.Context, filename, token string) error
}

type httpClient struct {
	client    *http.Client
	baseURL   string
	uploadURL string
	timeout   time.Duration
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.FileStore.RequestTimeout()
	return &httpClient{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.FileStore.UploadServer, "/"),
		uploadURL: cfg.FileStore.UploadURL,
		timeout:   timeout,
	}
}

func (c *httpClient) Delete(ctx context.Context, filename, token string) error {
	err := c.delete(ctx, filename, token)
	if err != nil {
		log.Printf("✗ op %s: %v", common.OpID(ctx), err)
	}
	return err
}

func (c *httpClient) delete(ctx context.Context, filename, token string) error {
	name := c.relativeName(filename)
	if name == "" {
		return &common.RemoteDeleteError{Filename: filename, Err: fmt.Errorf("empty filename")}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/delete/" + escapePath(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &common.RemoteDeleteError{Filename: name, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &common.RemoteDeleteError{Filename: name, Err: err}
	}
	defer resp.Body.Close()

	var body common.MessageResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return &common.RemoteDeleteError{Filename: name, Status: resp.StatusCode, Err: err}
	}
	// a body that is not JSON leaves Message empty and fails the check below
	_ = json.Unmarshal(raw, &body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || body.Message != DeletedMessage {
		return &common.RemoteDeleteError{Filename: name, Status: resp.StatusCode, Message: body.Message}
	}
	return nil
}

// relativeName strips the public upload prefix stored with some filenames.
func (c *httpClient) relativeName(filename string) string {
	if c.uploadURL != "" {
		filename = strings.TrimPrefix(filename, c.uploadURL)
	}
	return strings.TrimLeft(filename, "/")
}

// escapePath escapes each segment of a stored name and keeps the slashes, so
// nested names like "2024/cat.png" reach the upload server as paths.
func escapePath(name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
