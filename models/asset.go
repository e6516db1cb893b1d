// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataURI is returned by [DecodeDataURI] for values that are not
// base64 data URIs.
var ErrInvalidDataURI = errors.New("invalid data uri")

// Asset is an immutable binary blob referenced by note elements. Once its
// content is hashed under a given UUID the bytes are never expected to change.
type Asset struct {
	// UUID identifies the asset across devices.
	UUID string `json:"uuid"`

	// MimeType is the native content type of the blob. It is sent as the
	// Content-Type header when the blob is uploaded.
	MimeType string `json:"mime_type"`

	// Data is the raw payload.
	Data []byte `json:"-"`
}

// Size returns the payload length in bytes.
func (a Asset) Size() int64 {
	return int64(len(a.Data))
}

// DataURI encodes the asset as a base64 data URI.
func (a Asset) DataURI() string {
	mime := a.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// DecodeDataURI parses a "data:<mime>;base64,<payload>" string into an
// [Asset] with the given UUID.
func DecodeDataURI(uuid, uri string) (Asset, error) {
	header, payload, ok := strings.Cut(strings.TrimSpace(uri), ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return Asset{}, ErrInvalidDataURI
	}

	meta := strings.TrimPrefix(header, "data:")
	mime, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return Asset{}, fmt.Errorf("%w: unsupported encoding %q", ErrInvalidDataURI, encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return Asset{UUID: uuid, MimeType: mime, Data: data}, nil
}

// AssetManifestEntry describes one asset known to a side of the sync.
type AssetManifestEntry struct {
	UUID      string `json:"uuid"`
	Hash      string `json:"hash"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// AssetManifest is the ordered set of assets known to one side. It is
// computed fresh for every sync attempt and never persisted.
type AssetManifest struct {
	Entries    []AssetManifestEntry
	AssetTypes map[string]string
}

// UUIDs returns the asset identifiers in manifest order.
func (m AssetManifest) UUIDs() []string {
	ids := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		ids = append(ids, e.UUID)
	}
	return ids
}

// Hashes returns the uuid→hash map sent to the server as assetHashList.
func (m AssetManifest) Hashes() map[string]string {
	hashes := make(map[string]string, len(m.Entries))
	for _, e := range m.Entries {
		hashes[e.UUID] = e.Hash
	}
	return hashes
}

// Contains reports whether uuid is part of the manifest.
func (m AssetManifest) Contains(uuid string) bool {
	for _, e := range m.Entries {
		if e.UUID == uuid {
			return true
		}
	}
	return false
}

// ManifestFromHashes builds a manifest from the assetHashList/assetTypes pair
// published by the remote endpoint. Entries are sorted by UUID.
func ManifestFromHashes(hashes, types map[string]string) AssetManifest {
	m := AssetManifest{AssetTypes: make(map[string]string, len(hashes))}
	for _, id := range sortedKeys(hashes) {
		m.Entries = append(m.Entries, AssetManifestEntry{UUID: id, Hash: hashes[id], MimeType: types[id]})
		if t, ok := types[id]; ok {
			m.AssetTypes[id] = t
		}
	}
	return m
}

// HashBatchRequest asks the hasher to hash a set of assets. The correlation
// id is assigned by the hasher when left empty.
type HashBatchRequest struct {
	CorrelationID string
	AssetIDs      []string
}

// HashBatchResult is the success payload of a hashing batch.
type HashBatchResult struct {
	CorrelationID string

	// Hashes maps asset UUID to content digest. Assets that failed to hash
	// are absent.
	Hashes map[string]string

	// MimeTypes maps asset UUID to the classified MIME type.
	MimeTypes map[string]string

	// Sizes maps asset UUID to payload size in bytes.
	Sizes map[string]int64

	// OversizedAssetsFound is set when at least one asset exceeds the
	// configured size ceiling.
	OversizedAssetsFound bool

	// Dropped lists assets that could not be hashed.
	Dropped []string
}
