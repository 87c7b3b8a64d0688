package archiver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// ProofReader provides read access to proof records. The registry satisfies
// this interface.
type ProofReader interface {
	GetProof(id interfaces.ProofID) (interfaces.ProofRecord, error)
}

// Archiver copies registry activity into content-addressed storage in the
// background. It keeps a cursor into the event log and on every pass writes
// the events it has not seen yet plus a snapshot of each proof those events
// touch.
type Archiver struct {
	events  interfaces.EventLog
	proofs  ProofReader
	storage interfaces.StorageBackend
	log     *slog.Logger

	interval time.Duration
	cursor   uint64
}

// New creates an archiver over the given event log and proof source.
// The interval controls how often Run polls for new events.
func New(events interfaces.EventLog, proofs ProofReader, storage interfaces.StorageBackend, interval time.Duration, log *slog.Logger) *Archiver {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Archiver{
		events:   events,
		proofs:   proofs,
		storage:  storage,
		log:      log,
		interval: interval,
	}
}

// Run polls the event log until the context is cancelled. Errors from a
// single pass are logged and the cursor is left in place so the next pass
// retries the same window.
func (a *Archiver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.ArchiveOnce(ctx); err != nil {
				a.log.Error("Archive pass failed", "err", err)
			}
		}
	}
}

// batchLimit bounds how many events a single pass pulls from the log.
const batchLimit = 256

// ArchiveOnce performs a single archival pass: store all events past the
// cursor as one batch, snapshot every proof referenced by those events, then
// advance the cursor. The cursor only moves when the whole pass succeeded,
// so a failed pass is retried in full.
func (a *Archiver) ArchiveOnce(ctx context.Context) error {
	events := a.events.Since(a.cursor, batchLimit)
	if len(events) == 0 {
		return nil
	}

	if err := a.storeEvents(ctx, events); err != nil {
		return fmt.Errorf("storing event batch: %w", err)
	}

	for _, id := range proofIDsOf(events) {
		if err := a.snapshotProof(ctx, id); err != nil {
			return fmt.Errorf("snapshotting proof %s: %w", id.String(), err)
		}
	}

	a.cursor = events[len(events)-1].Sequence
	a.log.Debug("Archived events",
		slog.Int("count", len(events)),
		slog.Uint64("cursor", a.cursor))
	return nil
}

func (a *Archiver) storeEvents(ctx context.Context, events []interfaces.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	if _, err := a.storage.Store(ctx, data, interfaces.EventType); err != nil {
		return err
	}
	return nil
}

func (a *Archiver) snapshotProof(ctx context.Context, proofID interfaces.ProofID) error {
	record, err := a.proofs.GetProof(proofID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if _, err := a.storage.Store(ctx, data, interfaces.ProofType); err != nil {
		return err
	}
	return nil
}

// proofIDsOf returns the distinct proof IDs carried by the events, in first
// occurrence order. Events without a proof reference are skipped.
func proofIDsOf(events []interfaces.Event) []interfaces.ProofID {
	var zero interfaces.ProofID
	seen := make(map[interfaces.ProofID]struct{}, len(events))
	ids := make([]interfaces.ProofID, 0, len(events))
	for _, ev := range events {
		if ev.ProofID == zero {
			continue
		}
		if _, ok := seen[ev.ProofID]; ok {
			continue
		}
		seen[ev.ProofID] = struct{}{}
		ids = append(ids, ev.ProofID)
	}
	return ids
}
