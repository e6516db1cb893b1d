package service

// SyncState is a step of a sync attempt.
type SyncState string

const (
	StateIdle                  SyncState = "Idle"
	StateAuthenticating        SyncState = "Authenticating"
	StateFetchingRemoteState   SyncState = "FetchingRemoteState"
	StateDownloadingDocument   SyncState = "DownloadingDocument"
	StateBuildingLocalManifest SyncState = "BuildingLocalManifest"
	StateDiffing               SyncState = "Diffing"
	StateTransferringAssets    SyncState = "TransferringAssets"
	StateUploadingDocument     SyncState = "UploadingDocument"
	StateDone                  SyncState = "Done"
	StateFailed                SyncState = "Failed"
)

// IsTerminal reports whether no transition may leave s.
func (s SyncState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// StateObserver is told about every transition of an attempt. It is called
// on the attempt's goroutine and must return quickly.
type StateObserver func(notepadID string, from, to SyncState)
