package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

const (
	formContentType = "application/x-www-form-urlencoded; charset=UTF-8"
	blobContentType = "application/octet-stream"
)

// BackoffFactory returns a fresh delay strategy for one call. The adapter
// caps it with the configured retry budget.
type BackoffFactory func() retry.Backoff

// ConstantBackoff returns a [BackoffFactory] that waits delay between
// attempts. A zero delay retries immediately.
func ConstantBackoff(delay time.Duration) BackoffFactory {
	return func() retry.Backoff {
		return retry.BackoffFunc(func() (time.Duration, bool) {
			return delay, false
		})
	}
}

// Option customizes an [HTTPAdapter].
type Option func(*HTTPAdapter)

// WithBackoff replaces the delay strategy used between retries.
func WithBackoff(factory BackoffFactory) Option {
	return func(h *HTTPAdapter) {
		if factory != nil {
			h.backoff = factory
		}
	}
}

// HTTPAdapter implements [ServerAdapter] and [BlobTransport] over HTTP.
type HTTPAdapter struct {
	client *utils.HTTPClient

	baseURL        string
	requestTimeout time.Duration
	apiAttempts    int
	blobRetries    int
	backoff        BackoffFactory
	limiter        *rate.Limiter

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// and [BlobTransport]. The base URL is the one already resolved by the config
// layer (production or development endpoint).
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, syncCfg config.ClientSync, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) (*HTTPAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	apiAttempts := syncCfg.APIAttempts
	if apiAttempts < 1 {
		apiAttempts = 1
	}

	h := &HTTPAdapter{
		client:         utils.NewHTTPClient(buildInfo.UserAgent()),
		baseURL:        baseURL,
		requestTimeout: adapterCfg.RequestTimeout,
		apiAttempts:    apiAttempts,
		blobRetries:    max(syncCfg.BlobRetries, 0),
		backoff:        ConstantBackoff(syncCfg.RetryDelay),
		logger:         logger,
	}

	if syncCfg.RequestsPerSecond > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(syncCfg.RequestsPerSecond), 1)
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter].
func (h *HTTPAdapter) Login(ctx context.Context, credentials models.Credentials) (models.SyncIdentity, error) {
	var resp models.LoginResponse
	err := h.call(ctx, "account", "login", credentials.Username, url.Values{
		"password": {credentials.Password},
	}, &resp)
	if err != nil {
		return models.SyncIdentity{}, err
	}

	if resp.Token == "" {
		return models.SyncIdentity{}, &ProtocolError{Op: "account/login", Err: fmt.Errorf("empty token")}
	}

	return models.SyncIdentity{Username: credentials.Username, Token: resp.Token}, nil
}

// IsPro implements [ServerAdapter].
func (h *HTTPAdapter) IsPro(ctx context.Context, identity models.SyncIdentity) (bool, error) {
	var resp models.IsProResponse
	err := h.call(ctx, "account", "is_pro", identity.Username, url.Values{
		"token": {identity.Token},
	}, &resp)

	return resp.IsPro, err
}

// ListNotepads implements [ServerAdapter].
func (h *HTTPAdapter) ListNotepads(ctx context.Context, identity models.SyncIdentity) ([]models.SyncedNotepad, error) {
	var resp models.NotepadListResponse
	err := h.call(ctx, "notepad", "list_notepads", identity.Username, url.Values{
		"token": {identity.Token},
	}, &resp)
	if err != nil {
		return nil, err
	}

	notepads := make([]models.SyncedNotepad, 0, len(resp.Notepads))
	for title, syncID := range resp.Notepads {
		notepads = append(notepads, models.SyncedNotepad{SyncID: syncID, Title: title})
	}
	sort.Slice(notepads, func(i, j int) bool {
		return notepads[i].Title < notepads[j].Title
	})

	return notepads, nil
}

// ListSharedNotepads implements [ServerAdapter].
func (h *HTTPAdapter) ListSharedNotepads(ctx context.Context, identity models.SyncIdentity) (map[string]models.SharingData, error) {
	var resp models.SharedNotepadListResponse
	err := h.call(ctx, "notepad", "sharing_list_notepads", identity.Username, url.Values{
		"token": {identity.Token},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Notepads == nil {
		resp.Notepads = map[string]models.SharingData{}
	}
	return resp.Notepads, nil
}

// CreateNotepad implements [ServerAdapter].
func (h *HTTPAdapter) CreateNotepad(ctx context.Context, identity models.SyncIdentity, title string) (string, error) {
	var resp models.CreateNotepadResponse
	err := h.call(ctx, "notepad", "create", identity.Username, url.Values{
		"token":        {identity.Token},
		"notepadTitle": {title},
	}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Notepad == "" {
		return "", &ProtocolError{Op: "notepad/create", Err: fmt.Errorf("empty sync id")}
	}
	return resp.Notepad, nil
}

// SyncInfo implements [ServerAdapter].
func (h *HTTPAdapter) SyncInfo(ctx context.Context, syncID string) (models.RemoteSyncRecord, error) {
	var resp models.SyncInfoResponse
	if err := h.call(ctx, "sync", "info", syncID, nil, &resp); err != nil {
		return models.RemoteSyncRecord{}, err
	}

	lastModified, err := models.ParseLastModified(resp.LastModified)
	if err != nil {
		return models.RemoteSyncRecord{}, &ProtocolError{Op: "sync/info", Err: err}
	}

	return models.RemoteSyncRecord{
		SyncID:       syncID,
		Title:        resp.Title,
		LastModified: lastModified,
		Exists:       true,
		Manifest:     models.ManifestFromHashes(resp.AssetHashList, resp.AssetTypes),
	}, nil
}

// DownloadNotepad implements [ServerAdapter].
func (h *HTTPAdapter) DownloadNotepad(ctx context.Context, syncID string) (models.WireNotepad, error) {
	var resp models.DownloadNotepadResponse
	if err := h.call(ctx, "sync", "download", syncID, nil, &resp); err != nil {
		return models.WireNotepad{}, err
	}

	var wire models.WireNotepad
	if err := json.Unmarshal([]byte(resp.Notepad), &wire); err != nil {
		return models.WireNotepad{}, &ProtocolError{Op: "sync/download", Err: err}
	}

	return wire, nil
}

// AssetDownloadLinks implements [ServerAdapter].
func (h *HTTPAdapter) AssetDownloadLinks(ctx context.Context, syncID string, assetIDs []string) (models.AssetLinks, error) {
	assets, err := json.Marshal(nonNil(assetIDs))
	if err != nil {
		return nil, fmt.Errorf("encode asset list: %w", err)
	}

	var resp models.AssetLinksResponse
	err = h.call(ctx, "sync", "download_assets", syncID, url.Values{
		"assets": {string(assets)},
	}, &resp)

	return links(resp.URLList), err
}

// AssetUploadLinks implements [ServerAdapter].
func (h *HTTPAdapter) AssetUploadLinks(ctx context.Context, syncID string, identity models.SyncIdentity, assetIDs []string) (models.AssetLinks, error) {
	assets, err := json.Marshal(nonNil(assetIDs))
	if err != nil {
		return nil, fmt.Errorf("encode asset list: %w", err)
	}

	var resp models.AssetLinksResponse
	err = h.call(ctx, "sync", "upload_assets", syncID, url.Values{
		"assets":   {string(assets)},
		"username": {identity.Username},
		"token":    {identity.Token},
	}, &resp)

	return links(resp.URLList), err
}

// UploadNotepad implements [ServerAdapter].
func (h *HTTPAdapter) UploadNotepad(ctx context.Context, syncID string, identity models.SyncIdentity, body string) (models.AssetLinks, error) {
	var resp models.UploadNotepadResponse
	err := h.call(ctx, "sync", "upload", syncID, url.Values{
		"notepadV2": {body},
		"username":  {identity.Username},
		"token":     {identity.Token},
	}, &resp)

	return links(resp.AssetsToUpload), err
}

// DeleteNotepad implements [ServerAdapter].
func (h *HTTPAdapter) DeleteNotepad(ctx context.Context, syncID string, identity models.SyncIdentity) error {
	return h.call(ctx, "sync", "delete", syncID, url.Values{
		"username": {identity.Username},
		"token":    {identity.Token},
	}, nil)
}

// DownloadAsset implements [BlobTransport].
func (h *HTTPAdapter) DownloadAsset(ctx context.Context, rawURL string) ([]byte, string, error) {
	var (
		data        []byte
		contentType string
	)

	err := h.withRetry(ctx, "asset/download", h.blobRetries, true, func(ctx context.Context) error {
		resp, err := h.client.R().
			SetContext(ctx).
			Get(rawURL)
		if err != nil {
			return mapTransportError(ctx, "asset/download", err)
		}
		if err = mapHTTPError("asset/download", resp); err != nil {
			return err
		}

		data = resp.Body()
		contentType = resp.Header().Get("Content-Type")
		return nil
	})

	return data, contentType, err
}

// UploadAsset implements [BlobTransport].
func (h *HTTPAdapter) UploadAsset(ctx context.Context, rawURL string, asset models.Asset) error {
	contentType := asset.MimeType
	if contentType == "" {
		contentType = blobContentType
	}

	return h.withRetry(ctx, "asset/upload", h.blobRetries, true, func(ctx context.Context) error {
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", contentType).
			SetBody(asset.Data).
			Put(rawURL)
		if err != nil {
			return mapTransportError(ctx, "asset/upload", err)
		}

		return mapHTTPError("asset/upload", resp)
	})
}

// call performs one API call with the API retry budget. A nil payload is sent
// as a GET bounded by the request timeout, anything else as a form POST
// without a deadline. The JSON body of a 2xx response is decoded into result
// when result is non-nil.
func (h *HTTPAdapter) call(ctx context.Context, group, endpoint, resource string, payload url.Values, result any) error {
	op := group + "/" + endpoint
	target := h.endpointURL(group, endpoint, resource)

	return h.withRetry(ctx, op, h.apiAttempts-1, false, func(ctx context.Context) error {
		resp, err := h.do(ctx, target, payload)
		if err != nil {
			return mapTransportError(ctx, op, err)
		}
		if err = mapHTTPError(op, resp); err != nil {
			return err
		}

		if result == nil {
			return nil
		}
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return &ProtocolError{Op: op, Err: err}
		}
		return nil
	})
}

func (h *HTTPAdapter) do(ctx context.Context, target string, payload url.Values) (*resty.Response, error) {
	req := h.client.R().SetHeader("Accept", "application/json")

	if payload == nil {
		if h.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
			defer cancel()
		}
		return req.SetContext(ctx).Get(target)
	}

	return req.
		SetContext(ctx).
		SetHeader("Content-Type", formContentType).
		SetBody(payload.Encode()).
		Post(target)
}

// withRetry runs fn until it succeeds, fails with a final error or the retry
// budget is spent. With retryAll every error except cancellation is retried.
func (h *HTTPAdapter) withRetry(ctx context.Context, op string, retries int, retryAll bool, fn func(ctx context.Context) error) error {
	log := logger.FromContextOr(ctx, h.logger)

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(max(retries, 0)), h.backoff())

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		if h.limiter != nil {
			if err := h.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil || IsTierLimit(err) || (!retryAll && !isRetryable(err)) {
			return err
		}

		log.Warn().Err(err).
			Str("func", "HTTPAdapter.withRetry").
			Str("op", op).
			Int("attempt", attempt).
			Msg("request failed, retrying")
		return retry.RetryableError(err)
	})
}

func (h *HTTPAdapter) endpointURL(group, endpoint, resource string) string {
	return h.baseURL + "/diffeng/" + group + "/" + endpoint + "/" + url.PathEscape(resource)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func links(l models.AssetLinks) models.AssetLinks {
	if l == nil {
		return models.AssetLinks{}
	}
	return l
}
