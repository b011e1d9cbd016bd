package structure

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the server has no entry for
	// the requested identifier
	ErrNotFound = errors.New("no such structure")
	// ErrEmpty is returned when a structure is found but has no content
	ErrEmpty = errors.New("empty structure")
)

// FetchError reports a failure to reach the structure server, as
// opposed to the server answering that a structure does not exist
type FetchError struct {
	ID  string
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fail to fetch structure %s from %s: %v", e.ID, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher downloads PDB files over HTTP
type Fetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewFetcher returns a Fetcher downloading from baseURL, giving up
// on a request after timeout. A zero timeout means no timeout.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
	}
}

// URL returns the location of the PDB file of the structure id
func (f *Fetcher) URL(id string) string {
	return strings.TrimRight(f.BaseURL, "/") + "/" + url.PathEscape(id) + ".pdb"
}

// Fetch downloads the PDB file of the structure id
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {

	u := f.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{ID: id, URL: u, Err: err}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{ID: id, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fail to fetch structure %s: unexpected status %s", id, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{ID: id, URL: u, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, id)
	}
	return data, nil
}

// ReadFile reads a local PDB file. If the file name ends
// with ".gz", gzip decompression is used.
func ReadFile(fileName string) ([]byte, error) {

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("fail to read %s: %v", fileName, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %v", fileName, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, fileName)
	}
	return data, nil
}
