// SPDX-License-Identifier: MIT

package adjacency

import (
	"encoding/json"
	"fmt"
	"io"
)

// snapshotVersion is the current persisted-table format version.
const snapshotVersion = 1

// tableSnapshot is the wire form of a persisted ReferenceTable.
type tableSnapshot struct {
	Version int       `json:"version"`
	Angles  []float64 `json:"angles"`
}

// Snapshot writes the table to w as a versioned JSON document, the opaque
// persisted form shared between sessions. The table itself stays immutable.
func (t ReferenceTable) Snapshot(w io.Writer) error {
	snap := tableSnapshot{Version: snapshotVersion, Angles: t.values}
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("adjacency: encode snapshot: %w", err)
	}

	return nil
}

// FromSnapshot reads a table previously written by Snapshot. The angle
// values pass through NewReferenceTable, so a tampered snapshot with
// out-of-range values is rejected with ErrTableRange; an unknown version
// yields ErrSnapshotVersion.
func FromSnapshot(r io.Reader) (ReferenceTable, error) {
	var snap tableSnapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return ReferenceTable{}, fmt.Errorf("adjacency: decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return ReferenceTable{}, fmt.Errorf("%w: got %d, want %d",
			ErrSnapshotVersion, snap.Version, snapshotVersion)
	}

	return NewReferenceTable(snap.Angles)
}
