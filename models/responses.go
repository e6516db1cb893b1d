package models

// ErrorResponse is the JSON body returned by the remote endpoint on failure.
// Code is the structured classification; Error is the human-readable text.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// LoginResponse is returned by account/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// IsProResponse is returned by account/is_pro.
type IsProResponse struct {
	IsPro bool `json:"isPro"`
}

// NotepadListResponse is returned by notepad/list_notepads. Keys are notepad
// titles, values sync ids.
type NotepadListResponse struct {
	Notepads map[string]string `json:"notepads"`
}

// SharedNotepadListResponse is returned by notepad/sharing_list_notepads.
type SharedNotepadListResponse struct {
	Notepads map[string]SharingData `json:"notepads"`
}

// CreateNotepadResponse is returned by notepad/create.
type CreateNotepadResponse struct {
	Notepad string `json:"notepad"`
}

// SyncInfoResponse is returned by sync/info. AssetHashList and AssetTypes
// describe the assets the server already holds for the notepad.
type SyncInfoResponse struct {
	Title         string            `json:"title"`
	LastModified  string            `json:"lastModified"`
	AssetHashList map[string]string `json:"assetHashList,omitempty"`
	AssetTypes    map[string]string `json:"assetTypes,omitempty"`
}

// DownloadNotepadResponse is returned by sync/download. Notepad is a JSON
// document encoded as a string.
type DownloadNotepadResponse struct {
	Notepad string `json:"notepad"`
}

// AssetLinksResponse is returned by sync/download_assets and
// sync/upload_assets.
type AssetLinksResponse struct {
	URLList AssetLinks `json:"urlList"`
}

// UploadNotepadResponse is returned by sync/upload. AssetsToUpload lists the
// assets the server still does not hold after accepting the document.
type UploadNotepadResponse struct {
	AssetsToUpload AssetLinks `json:"assetsToUpload"`
}
