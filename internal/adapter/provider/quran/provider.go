package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/hifz-planner/internal/config"
	"github.com/heartmarshall/hifz-planner/internal/domain"
)

// Provider fetches mushaf page boundaries and surah metadata from an
// alquran.cloud compatible API. Both are static, so successful responses are
// cached for the life of the process.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger

	group singleflight.Group

	mu      sync.RWMutex
	markers []domain.PageMarker
	surahs  map[int]domain.ContentDetails
}

// NewProvider creates a Provider from QuranConfig.
func NewProvider(cfg config.QuranConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: cfg.RetryDelay,
		log:        logger.With("adapter", "quran"),
		surahs:     make(map[int]domain.ContentDetails),
	}
}

// PageMarkers returns the first surah and ayah of every mushaf page, in page
// order. Concurrent first calls share one request; a caller that gives up
// does not cancel it for the others.
func (p *Provider) PageMarkers(ctx context.Context) ([]domain.PageMarker, error) {
	p.mu.RLock()
	cached := p.markers
	p.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err := p.shared(ctx, "meta", func(ctx context.Context) (any, error) {
		var meta envelope[metaData]
		if err := p.getJSON(ctx, "/meta", &meta); err != nil {
			return nil, err
		}

		refs := meta.Data.Pages.References
		if len(refs) == 0 {
			return nil, fmt.Errorf("quran: meta has no page references: %w", domain.ErrMalformedMetadata)
		}

		markers := make([]domain.PageMarker, len(refs))
		for i, r := range refs {
			markers[i] = domain.PageMarker{Surah: r.Surah, Ayah: r.Ayah}
		}

		p.mu.Lock()
		p.markers = markers
		p.mu.Unlock()

		p.log.InfoContext(ctx, "page markers loaded", slog.Int("pages", len(markers)))
		return markers, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PageMarker), nil
}

// ContentDetails returns display metadata for a surah.
// Returns domain.ErrNotFound if the API does not know the surah.
func (p *Provider) ContentDetails(ctx context.Context, contentID int) (*domain.ContentDetails, error) {
	p.mu.RLock()
	cached, ok := p.surahs[contentID]
	p.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	key := strconv.Itoa(contentID)
	v, err := p.shared(ctx, "surah/"+key, func(ctx context.Context) (any, error) {
		var surah envelope[surahData]
		if err := p.getJSON(ctx, "/surah/"+key, &surah); err != nil {
			return nil, err
		}

		d := domain.ContentDetails{
			Number:         surah.Data.Number,
			Name:           surah.Data.Name,
			EnglishName:    surah.Data.EnglishName,
			TranslatedName: surah.Data.EnglishNameTranslation,
			AyahCount:      surah.Data.NumberOfAyahs,
			RevelationType: surah.Data.RevelationType,
		}
		if d.Number != contentID || d.AyahCount <= 0 {
			return nil, fmt.Errorf("quran: surah %d: %w", contentID, domain.ErrMalformedMetadata)
		}

		p.mu.Lock()
		p.surahs[contentID] = d
		p.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	d := v.(domain.ContentDetails)
	return &d, nil
}

// shared runs fetch once per key across concurrent callers. The fetch is
// detached from the caller's cancellation and bounded by the client timeout;
// each caller still returns as soon as its own ctx is done.
func (p *Provider) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	ch := p.group.DoChan(key, func() (any, error) {
		return fetch(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// getJSON performs a GET against the API and decodes the body into dst.
func (p *Provider) getJSON(ctx context.Context, path string, dst any) error {
	p.log.DebugContext(ctx, "quran request", slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("quran: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, path)
	if err != nil {
		p.log.ErrorContext(ctx, "quran request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("quran: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("quran %s: %w", path, domain.ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quran: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("quran: read body: %w", err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("quran: decode json: %w", errors.Join(err, domain.ErrMalformedMetadata))
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, path string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "quran retry", slog.String("path", path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}
