package platform

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/go-faster/errors"
	"golang.org/x/sync/singleflight"
)

// Image fetching limits
const (
	DefaultImageTimeout = 15 * time.Second
	MaxImageBytes       = 8 << 20
	DefaultImageCache   = 256
)

// ImageLoader downloads product images and keeps them as Fyne resources.
// Concurrent loads of the same URL share one request.
type ImageLoader struct {
	client   *http.Client
	mu       sync.RWMutex
	cache    map[string]fyne.Resource
	order    []string
	maxItems int
	group    singleflight.Group
}

// NewImageLoader creates a loader; a nil client gets DefaultImageTimeout.
func NewImageLoader(client *http.Client, maxItems int) *ImageLoader {
	if client == nil {
		client = &http.Client{Timeout: DefaultImageTimeout}
	}
	if maxItems <= 0 {
		maxItems = DefaultImageCache
	}
	return &ImageLoader{
		client:   client,
		cache:    make(map[string]fyne.Resource),
		maxItems: maxItems,
	}
}

// Load returns the image at rawURL, from cache when possible.
func (l *ImageLoader) Load(ctx context.Context, rawURL string) (fyne.Resource, error) {
	if rawURL == "" {
		return nil, errors.New("empty image url")
	}

	l.mu.RLock()
	res, ok := l.cache[rawURL]
	l.mu.RUnlock()
	if ok {
		return res, nil
	}

	// The shared fetch outlives any single caller; each caller waits on its own ctx.
	ch := l.group.DoChan(rawURL, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultImageTimeout)
		defer cancel()

		res, err := l.fetch(fetchCtx, rawURL)
		if err != nil {
			return nil, err
		}
		l.store(rawURL, res)
		return res, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			log.Printf("[images] load %s FAILED err=%v", rawURL, r.Err)
			return nil, r.Err
		}
		return r.Val.(fyne.Resource), nil
	}
}

// Cached reports how many images are held.
func (l *ImageLoader) Cached() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}

func (l *ImageLoader) fetch(ctx context.Context, rawURL string) (fyne.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create image request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	if len(data) > MaxImageBytes {
		return nil, errors.Errorf("image larger than %d bytes", MaxImageBytes)
	}

	return fyne.NewStaticResource(imageName(rawURL), data), nil
}

// store adds res, evicting the oldest entries beyond maxItems.
func (l *ImageLoader) store(key string, res fyne.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.cache[key]; ok {
		return
	}
	l.cache[key] = res
	l.order = append(l.order, key)
	for len(l.order) > l.maxItems {
		delete(l.cache, l.order[0])
		l.order = l.order[1:]
	}
}

func imageName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "image"
	}
	return path.Base(u.Path)
}
