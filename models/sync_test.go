package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncResult_Partial(t *testing.T) {
	errGone := errors.New("gone")
	res := SyncResult{Transfers: TransferResult{
		Succeeded: []string{"a"},
		Failed:    map[string]error{"c": errGone, "b": errors.New("timeout")},
	}}

	require.True(t, res.IsPartial())

	var partial *PartialTransferError
	require.ErrorAs(t, res.Err(), &partial)
	assert.Equal(t, "2 asset(s) failed to transfer: b, c", partial.Error())
	assert.ErrorIs(t, res.Err(), errGone)
}

func TestSyncResult_Complete(t *testing.T) {
	res := SyncResult{Transfers: TransferResult{Succeeded: []string{"a"}}}

	assert.NoError(t, res.Err())
	assert.False(t, res.IsPartial())
}

func TestTransferResult_Merge(t *testing.T) {
	var r TransferResult
	r.Merge(TransferResult{Succeeded: []string{"a"}})
	r.Merge(TransferResult{Succeeded: []string{"b"}, Failed: map[string]error{"c": errors.New("x")}})

	assert.Equal(t, []string{"a", "b"}, r.Succeeded)
	assert.True(t, r.HasFailures())
	assert.Contains(t, r.Failed, "c")
}

func TestTransferPlan_IsEmpty(t *testing.T) {
	assert.True(t, TransferPlan{}.IsEmpty())
	assert.False(t, TransferPlan{AssetsToDownload: []string{"a"}}.IsEmpty())
}

func TestSyncIdentity_IsZero(t *testing.T) {
	assert.True(t, SyncIdentity{Username: "ada"}.IsZero())
	assert.False(t, SyncIdentity{Username: "ada", Token: "t"}.IsZero())
}
