package client

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/notepad-sync/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func printLocalNotepads(w io.Writer, notepads []models.LocalNotepad) {
	if len(notepads) == 0 {
		fmt.Fprintln(w, faintStyle.Render("no local notepads"))
		return
	}

	for _, np := range notepads {
		syncID := np.SyncID
		if syncID == "" {
			syncID = "not synced"
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			np.ID,
			titleStyle.Render(np.Title),
			faintStyle.Render(formatTime(np.LastModified)),
			faintStyle.Render(syncID),
		)
	}
}

func printRemoteNotepads(w io.Writer, notepads []models.SyncedNotepad) {
	if len(notepads) == 0 {
		fmt.Fprintln(w, faintStyle.Render("no synced notepads"))
		return
	}

	for _, np := range notepads {
		fmt.Fprintf(w, "%s  %s\n", np.SyncID, titleStyle.Render(np.Title))
	}
}

func printSharedNotepads(w io.Writer, shared map[string]models.SharingData) {
	if len(shared) == 0 {
		fmt.Fprintln(w, faintStyle.Render("nothing is shared with you"))
		return
	}

	ids := make([]string, 0, len(shared))
	for id := range shared {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintf(w, "%s  %s  %s\n", id, titleStyle.Render(shared[id].Title), faintStyle.Render("by "+shared[id].Owner))
	}
}

func printRecord(w io.Writer, record models.RemoteSyncRecord) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(record.Title), faintStyle.Render(record.SyncID))
	fmt.Fprintf(w, "last modified: %s\n", formatTime(record.LastModified))
	fmt.Fprintf(w, "assets: %d\n", len(record.Manifest.Entries))
	for _, e := range record.Manifest.Entries {
		fmt.Fprintf(w, "  %s  %s\n", e.UUID, faintStyle.Render(e.MimeType))
	}
}

// printSyncResult reports the outcome of one attempt. Failed transfers are
// listed individually.
func printSyncResult(w io.Writer, res models.SyncResult) {
	switch res.Direction {
	case models.DirectionNone:
		fmt.Fprintln(w, successStyle.Render("already in sync"))
		return
	case models.DirectionUpload:
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("uploaded"), res.SyncID)
	case models.DirectionDownload:
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("downloaded"), res.SyncID)
	}

	fmt.Fprintf(w, "assets: %d to upload, %d to download, %d transferred\n",
		len(res.Plan.AssetsToUpload), len(res.Plan.AssetsToDownload), len(res.Transfers.Succeeded))
	fmt.Fprintln(w, faintStyle.Render(strings.Join(res.States, " → ")))

	if !res.IsPartial() {
		return
	}

	ids := make([]string, 0, len(res.Transfers.Failed))
	for id := range res.Transfers.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d asset(s) failed to transfer and will be retried on the next sync:", len(ids))))
	for _, id := range ids {
		fmt.Fprintf(w, "  %s  %s\n", id, faintStyle.Render(res.Transfers.Failed[id].Error()))
	}
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("error: "+msg))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}
