package models

import "time"

// LocalNotepad is an entry of the local notepad list.
type LocalNotepad struct {
	ID           string
	Title        string
	SyncID       string
	LastModified time.Time
}

// StoredCredential is the account remembered on this device. Password is kept
// so that an expired token can be renewed without prompting.
type StoredCredential struct {
	Username string
	Password string
	Token    string
}

// Identity returns the bearer credential part.
func (c StoredCredential) Identity() SyncIdentity {
	return SyncIdentity{Username: c.Username, Token: c.Token}
}

// Credentials returns the username/password part.
func (c StoredCredential) Credentials() Credentials {
	return Credentials{Username: c.Username, Password: c.Password}
}
