// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/models"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = models.SyncIdentity{Username: "alice", Token: "tok"}

func newTestAdapter(t *testing.T, serverURL string, opts ...Option) *HTTPAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 200 * time.Millisecond}
	syncCfg := config.ClientSync{APIAttempts: 3, BlobRetries: 2}

	a, err := NewHTTPServerAdapter(adapterCfg, syncCfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop(), opts...)
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: " "}, config.ClientSync{}, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestEndpointURL(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:48025/")

	assert.Equal(t, "http://localhost:48025/diffeng/sync/info/abc", a.endpointURL("sync", "info", "abc"))
	assert.Equal(t, "http://localhost:48025/diffeng/account/login/a%2Fb", a.endpointURL("account", "login", "a/b"))
}

// ── account ─────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/diffeng/account/login/alice", r.URL.Path)
		assert.Equal(t, formContentType, r.Header.Get("Content-Type"))
		assert.Equal(t, "notepad-sync/1.0.0", r.Header.Get("User-Agent"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))

		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "tok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	identity, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestLogin_UnauthorizedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "bad credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "bad credentials", serverErr.Message)
	assert.EqualValues(t, 1, calls.Load())
}

func TestLogin_EmptyTokenIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice"})

	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestIsPro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/account/is_pro/alice", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "tok", r.PostForm.Get("token"))
		writeJSON(t, w, http.StatusOK, models.IsProResponse{IsPro: true})
	}))
	defer srv.Close()

	isPro, err := newTestAdapter(t, srv.URL).IsPro(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.True(t, isPro)
}

// ── notepad ─────────────────────────────────────────────────────────────────

func TestListNotepads_SortedByTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/notepad/list_notepads/alice", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NotepadListResponse{Notepads: map[string]string{
			"Work":    "sync-2",
			"Journal": "sync-1",
			"Recipes": "sync-3",
		}})
	}))
	defer srv.Close()

	notepads, err := newTestAdapter(t, srv.URL).ListNotepads(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.Equal(t, []models.SyncedNotepad{
		{SyncID: "sync-1", Title: "Journal"},
		{SyncID: "sync-3", Title: "Recipes"},
		{SyncID: "sync-2", Title: "Work"},
	}, notepads)
}

func TestListSharedNotepads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/notepad/sharing_list_notepads/alice", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.SharedNotepadListResponse{Notepads: map[string]models.SharingData{
			"sync-9": {Title: "Team", Owner: "bob"},
		}})
	}))
	defer srv.Close()

	shared, err := newTestAdapter(t, srv.URL).ListSharedNotepads(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.Equal(t, models.SharingData{Title: "Team", Owner: "bob"}, shared["sync-9"])
}

func TestCreateNotepad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/notepad/create/alice", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Zoë's notes", r.PostForm.Get("notepadTitle"))
		assert.Equal(t, "tok", r.PostForm.Get("token"))
		writeJSON(t, w, http.StatusOK, models.CreateNotepadResponse{Notepad: "sync-new"})
	}))
	defer srv.Close()

	syncID, err := newTestAdapter(t, srv.URL).CreateNotepad(context.Background(), testIdentity, "Zoë's notes")

	require.NoError(t, err)
	assert.Equal(t, "sync-new", syncID)
}

// ── sync ────────────────────────────────────────────────────────────────────

func TestSyncInfo_UsesGETAndParsesManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/diffeng/sync/info/sync-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.SyncInfoResponse{
			Title:         "Journal",
			LastModified:  "2024-03-01T10:20:30.000+13:00",
			AssetHashList: map[string]string{"b": "h2", "a": "h1"},
			AssetTypes:    map[string]string{"a": "image/png"},
		})
	}))
	defer srv.Close()

	record, err := newTestAdapter(t, srv.URL).SyncInfo(context.Background(), "sync-1")

	require.NoError(t, err)
	assert.True(t, record.Exists)
	assert.Equal(t, "Journal", record.Title)
	assert.Equal(t, []string{"a", "b"}, record.Manifest.UUIDs())
	assert.Equal(t, "image/png", record.Manifest.AssetTypes["a"])
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.FixedZone("", 13*3600)).Unix(), record.LastModified.Unix())
}

func TestSyncInfo_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SyncInfo(context.Background(), "missing")

	assert.True(t, IsNotFound(err))
	assert.EqualValues(t, 1, calls.Load())
}

func TestSyncInfo_MalformedLastModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SyncInfoResponse{LastModified: "yesterday"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SyncInfo(context.Background(), "sync-1")

	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestDownloadNotepad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/sync/download/sync-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.DownloadNotepadResponse{
			Notepad: `{"title":"Journal","lastModified":"2024-03-01T10:20:30.000+13:00","sections":[],"crypto":"AES-256-GCM"}`,
		})
	}))
	defer srv.Close()

	wire, err := newTestAdapter(t, srv.URL).DownloadNotepad(context.Background(), "sync-1")

	require.NoError(t, err)
	assert.Equal(t, "Journal", wire.Title)
	assert.Equal(t, "AES-256-GCM", wire.Crypto)
	assert.JSONEq(t, `[]`, string(wire.Sections))
}

func TestDownloadNotepad_InvalidInnerJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.DownloadNotepadResponse{Notepad: "{broken"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DownloadNotepad(context.Background(), "sync-1")

	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestAssetDownloadLinks_FormEncodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/sync/download_assets/sync-1", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.JSONEq(t, `["a","b"]`, r.PostForm.Get("assets"))
		writeJSON(t, w, http.StatusOK, models.AssetLinksResponse{URLList: models.AssetLinks{"a": "https://blob/a", "b": "https://blob/b"}})
	}))
	defer srv.Close()

	links, err := newTestAdapter(t, srv.URL).AssetDownloadLinks(context.Background(), "sync-1", []string{"a", "b"})

	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestUploadNotepad_FormFields(t *testing.T) {
	body := `{"title":"Journal","sections":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/diffeng/sync/upload/sync-1", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, body, r.PostForm.Get("notepadV2"))
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "tok", r.PostForm.Get("token"))
		writeJSON(t, w, http.StatusOK, models.UploadNotepadResponse{AssetsToUpload: models.AssetLinks{"c": "https://blob/c"}})
	}))
	defer srv.Close()

	missing, err := newTestAdapter(t, srv.URL).UploadNotepad(context.Background(), "sync-1", testIdentity, body)

	require.NoError(t, err)
	assert.Equal(t, models.AssetLinks{"c": "https://blob/c"}, missing)
}

func TestDeleteNotepad_IgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diffeng/sync/delete/sync-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteNotepad(context.Background(), "sync-1", testIdentity)
	assert.NoError(t, err)
}

// ── retry policy ────────────────────────────────────────────────────────────

func TestCall_ServerErrorRetriedThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "boom"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).IsPro(context.Background(), testIdentity)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCall_ClientErrorRetriedThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "transient garbage"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SyncInfo(context.Background(), "sync-1")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadRequest, serverErr.Status)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCall_FinalStatusesNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				writeJSON(t, w, status, models.ErrorResponse{Error: "no"})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).IsPro(context.Background(), testIdentity)

			require.Error(t, err)
			assert.EqualValues(t, 1, calls.Load())
		})
	}
}

func TestCall_RecoversWithinBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, http.StatusOK, models.IsProResponse{IsPro: true})
	}))
	defer srv.Close()

	isPro, err := newTestAdapter(t, srv.URL).IsPro(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.True(t, isPro)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCall_TierLimitStructuredCode(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusPaymentRequired, models.ErrorResponse{Error: "quota exceeded", Code: "TIER_LIMIT"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AssetUploadLinks(context.Background(), "sync-1", testIdentity, []string{"a"})

	var tierErr *TierLimitError
	require.ErrorAs(t, err, &tierErr)
	assert.Equal(t, "quota exceeded", tierErr.Message)
	assert.EqualValues(t, 1, calls.Load())
}

func TestCall_TierLimitMessageFallback(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "Too many assets on a non-pro notepad"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadNotepad(context.Background(), "sync-1", testIdentity, "{}")

	assert.True(t, IsTierLimit(err))
	assert.EqualValues(t, 1, calls.Load())
}

func TestCall_ProtocolErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).IsPro(context.Background(), testIdentity)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCall_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).SyncInfo(context.Background(), "sync-1")

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestCall_GETTimeout(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SyncInfo(context.Background(), "sync-1")

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCall_POSTIsNotBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
		writeJSON(t, w, http.StatusOK, models.UploadNotepadResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadNotepad(context.Background(), "sync-1", testIdentity, "{}")
	assert.NoError(t, err)
}

func TestCall_CancelledContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).SyncInfo(ctx, "sync-1")

	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, calls.Load())
}

func TestWithBackoff_UsedBetweenAttempts(t *testing.T) {
	var nexts atomic.Int32
	factory := func() retry.Backoff {
		return retry.BackoffFunc(func() (time.Duration, bool) {
			nexts.Add(1)
			return time.Millisecond, false
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, WithBackoff(factory)).IsPro(context.Background(), testIdentity)

	require.Error(t, err)
	assert.EqualValues(t, 2, nexts.Load())
}

func TestRateLimiter_AllowsCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.IsProResponse{})
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second},
		config.ClientSync{APIAttempts: 1, RequestsPerSecond: 100},
		models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a.limiter)

	for i := 0; i < 3; i++ {
		_, err = a.IsPro(context.Background(), testIdentity)
		require.NoError(t, err)
	}
}

func TestWithRetry_LogsThroughContextLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	attemptLog := (&logger.Logger{Logger: zerolog.New(&buf)}).
		WithFields(map[string]any{"notepad_id": "np-1", "direction": "upload"})
	ctx := attemptLog.WithContext(context.Background())

	_, err := newTestAdapter(t, srv.URL).IsPro(ctx, testIdentity)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "request failed, retrying")
	assert.Contains(t, buf.String(), `"notepad_id":"np-1"`)
	assert.Contains(t, buf.String(), `"direction":"upload"`)
}

// ── blobs ───────────────────────────────────────────────────────────────────

func TestDownloadAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	data, contentType, err := newTestAdapter(t, srv.URL).DownloadAsset(context.Background(), srv.URL+"/blob/a")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.Equal(t, "image/png", contentType)
}

func TestDownloadAsset_RetriesRegardlessOfStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).DownloadAsset(context.Background(), srv.URL+"/blob/a")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.EqualValues(t, 3, calls.Load())
}

func TestUploadAsset_SetsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, []byte("jpegdata"), body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UploadAsset(context.Background(), srv.URL+"/put/a",
		models.Asset{UUID: "a", MimeType: "image/jpeg", Data: []byte("jpegdata")})
	assert.NoError(t, err)
}

func TestUploadAsset_DefaultContentTypeAndRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, blobContentType, r.Header.Get("Content-Type"))
		if calls.Load() == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UploadAsset(context.Background(), srv.URL+"/put/a", models.Asset{UUID: "a", Data: []byte("x")})

	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"network", &NetworkError{Op: "x", Err: errors.New("refused")}, true},
		{"timeout", &TimeoutError{Op: "x", Err: context.DeadlineExceeded}, true},
		{"protocol", &ProtocolError{Op: "x", Err: errors.New("eof")}, true},
		{"server 500", &ServerError{Status: 500}, true},
		{"server 429", &ServerError{Status: 429}, true},
		{"server 400", &ServerError{Status: 400}, false},
		{"unauthorized", &ServerError{Status: 401}, false},
		{"tier limit", &TierLimitError{}, false},
		{"cancelled", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}
