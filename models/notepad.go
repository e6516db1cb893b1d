// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LastModifiedLayout is the timestamp layout used by the remote endpoint for
// the lastModified field of notepads and sync records.
const LastModifiedLayout = "2006-01-02T15:04:05.000-07:00"

// Element types that reference an [Asset] through ElementArgs.Ext.
const (
	ElementMarkdown  = "markdown"
	ElementImage     = "image"
	ElementFile      = "file"
	ElementRecording = "recording"
	ElementDrawing   = "drawing"
)

// Parent is implemented by every node that can own sections or notes. It is
// a non-owning back-reference used only for traversal.
type Parent interface {
	ParentTitle() string
}

// Notepad is the root document entity. It owns a tree of sections; sections
// own subsections and notes.
//
// The body of the notepad (Sections) is what gets encrypted when Crypto is
// set. Title, LastModified and the asset lists always travel in clear text so
// the server can compute quotas.
type Notepad struct {
	// Title is the user-visible name of the notepad.
	Title string `json:"title"`

	// LastModified is the last local modification time. Last-writer-wins
	// decisions compare this value against the remote record.
	LastModified time.Time `json:"-"`

	// Sections are the top-level sections owned by the notepad.
	Sections []*Section `json:"sections"`

	// NotepadAssets lists asset UUIDs owned by the notepad that may not be
	// referenced by any element (e.g. detached drawings kept for history).
	NotepadAssets []string `json:"notepadAssets,omitempty"`

	// Crypto names the encryption scheme of the body. Empty means the
	// notepad is not encrypted.
	Crypto string `json:"crypto,omitempty"`

	// AssetHashList maps asset UUID to content hash. Filled from the local
	// manifest right before upload.
	AssetHashList map[string]string `json:"assetHashList,omitempty"`

	// AssetTypes maps asset UUID to MIME type.
	AssetTypes map[string]string `json:"assetTypes,omitempty"`
}

// Section is a named container of subsections and notes.
type Section struct {
	Title       string     `json:"title"`
	InternalRef string     `json:"internalRef"`
	Sections    []*Section `json:"sections"`
	Notes       []*Note    `json:"notes"`

	parent Parent
}

// Note is a leaf page holding positioned elements.
type Note struct {
	Title        string    `json:"title"`
	InternalRef  string    `json:"internalRef"`
	Time         int64     `json:"time"`
	Elements     []Element `json:"elements"`
	Bibliography []Source  `json:"bibliography"`

	parent Parent
}

// Element is a single positioned block on a note.
type Element struct {
	Type    string      `json:"type"`
	Content string      `json:"content"`
	Args    ElementArgs `json:"args"`
}

// ElementArgs carries the layout of an element and, for binary element
// types, the UUID of the referenced asset in Ext.
type ElementArgs struct {
	ID       string `json:"id"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Width    string `json:"width"`
	Height   string `json:"height,omitempty"`
	Ext      string `json:"ext,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Source is a bibliography entry attached to a note element.
type Source struct {
	ID      int    `json:"id"`
	Item    string `json:"item"`
	Content string `json:"content"`
}

// IsEncrypted reports whether the notepad body must be encrypted on the wire.
func (n *Notepad) IsEncrypted() bool {
	return n != nil && n.Crypto != ""
}

// ParentTitle implements [Parent].
func (n *Notepad) ParentTitle() string { return n.Title }

// ParentTitle implements [Parent].
func (s *Section) ParentTitle() string { return s.Title }

// Parent returns the owner of the section, or nil when parents have not been
// restored yet.
func (s *Section) Parent() Parent { return s.parent }

// Parent returns the section owning the note.
func (n *Note) Parent() Parent { return n.parent }

// AssetRef returns the asset UUID referenced by the element, or "" when the
// element type carries no binary payload.
func (e Element) AssetRef() string {
	switch e.Type {
	case ElementImage, ElementFile, ElementRecording, ElementDrawing:
		return strings.TrimSpace(e.Args.Ext)
	default:
		return ""
	}
}

// RestoreParents rebuilds the non-owning back-references of the whole tree.
// It must be called after decoding a notepad from JSON.
func (n *Notepad) RestoreParents() {
	for _, s := range n.Sections {
		s.restoreParents(n)
	}
}

func (s *Section) restoreParents(parent Parent) {
	s.parent = parent
	for _, sub := range s.Sections {
		sub.restoreParents(s)
	}
	for _, note := range s.Notes {
		note.parent = s
	}
}

// Path returns the titles from the notepad root down to the note.
func (n *Note) Path() []string {
	path := []string{n.Title}
	for p := n.parent; p != nil; {
		path = append([]string{p.ParentTitle()}, path...)
		s, ok := p.(*Section)
		if !ok {
			break
		}
		p = s.parent
	}
	return path
}

// FlatNotepad is a flattened view of a notepad keyed by internal reference.
// NoteOrder keeps the depth-first order in which notes appear in the tree.
type FlatNotepad struct {
	Title     string
	Sections  map[string]*Section
	Notes     map[string]*Note
	NoteOrder []string
	Assets    []string
}

// Flatten walks the tree depth first and indexes every section and note.
func (n *Notepad) Flatten() FlatNotepad {
	flat := FlatNotepad{
		Title:    n.Title,
		Sections: make(map[string]*Section),
		Notes:    make(map[string]*Note),
		Assets:   append([]string(nil), n.NotepadAssets...),
	}

	var walk func(sections []*Section)
	walk = func(sections []*Section) {
		for _, s := range sections {
			flat.Sections[s.InternalRef] = s
			for _, note := range s.Notes {
				flat.Notes[note.InternalRef] = note
				flat.NoteOrder = append(flat.NoteOrder, note.InternalRef)
			}
			walk(s.Sections)
		}
	}
	walk(n.Sections)

	return flat
}

// WireNotepad is the serialized form that crosses the transport boundary.
// Sections holds either the JSON array of sections or, for encrypted
// notepads, a JSON string with the ciphertext.
type WireNotepad struct {
	Title         string            `json:"title"`
	LastModified  string            `json:"lastModified"`
	Sections      json.RawMessage   `json:"sections"`
	NotepadAssets []string          `json:"notepadAssets,omitempty"`
	Crypto        string            `json:"crypto,omitempty"`
	AssetHashList map[string]string `json:"assetHashList,omitempty"`
	AssetTypes    map[string]string `json:"assetTypes,omitempty"`
}

// ToWire converts the notepad to its wire form with the given encoded body.
func (n *Notepad) ToWire(body json.RawMessage) WireNotepad {
	return WireNotepad{
		Title:         n.Title,
		LastModified:  FormatLastModified(n.LastModified),
		Sections:      body,
		NotepadAssets: n.NotepadAssets,
		Crypto:        n.Crypto,
		AssetHashList: n.AssetHashList,
		AssetTypes:    n.AssetTypes,
	}
}

// Header returns a notepad carrying the clear-text fields of w and no
// sections.
func (w WireNotepad) Header() (*Notepad, error) {
	lastModified, err := ParseLastModified(w.LastModified)
	if err != nil {
		return nil, err
	}

	return &Notepad{
		Title:         w.Title,
		LastModified:  lastModified,
		NotepadAssets: w.NotepadAssets,
		Crypto:        w.Crypto,
		AssetHashList: w.AssetHashList,
		AssetTypes:    w.AssetTypes,
	}, nil
}

// FormatLastModified renders t in [LastModifiedLayout]. The zero time renders
// as an empty string.
func FormatLastModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LastModifiedLayout)
}

// ParseLastModified accepts [LastModifiedLayout] and RFC 3339 timestamps.
// An empty value yields the zero time.
func ParseLastModified(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(LastModifiedLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last modified %q: %w", value, err)
	}
	return t, nil
}
