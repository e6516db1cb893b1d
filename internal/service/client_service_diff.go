package service

import (
	"sort"

	"github.com/MKhiriev/notepad-sync/models"
)

// BuildTransferPlan compares the local and remote manifests by asset UUID.
//
// An asset is uploaded when only the local side has it and downloaded when
// only the remote side has it. Hashes are not compared: an asset is
// immutable once created under its UUID, so presence on the other side is
// enough to skip it.
//
// direction restricts the plan to one half: an upload never downloads and a
// download never uploads. Both lists are sorted.
func BuildTransferPlan(local, remote models.AssetManifest, direction models.SyncDirection) models.TransferPlan {
	var plan models.TransferPlan

	localIndex := make(map[string]struct{}, len(local.Entries))
	for _, e := range local.Entries {
		localIndex[e.UUID] = struct{}{}
	}

	remoteIndex := make(map[string]struct{}, len(remote.Entries))
	for _, e := range remote.Entries {
		remoteIndex[e.UUID] = struct{}{}
	}

	if direction != models.DirectionDownload {
		for id := range localIndex {
			if _, onRemote := remoteIndex[id]; !onRemote {
				plan.AssetsToUpload = append(plan.AssetsToUpload, id)
			}
		}
	}

	if direction != models.DirectionUpload {
		for id := range remoteIndex {
			if _, onLocal := localIndex[id]; !onLocal {
				plan.AssetsToDownload = append(plan.AssetsToDownload, id)
			}
		}
	}

	sort.Strings(plan.AssetsToUpload)
	sort.Strings(plan.AssetsToDownload)

	return plan
}
