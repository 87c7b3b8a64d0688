package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// IPFSBackend implements a storage backend using the InterPlanetary File
// System (IPFS). Because IPFS addresses content by its own CID rather than
// our SHA-256 content ID, the backend keeps a local index from content ID
// to IPFS CID for the blobs it stored.
type IPFSBackend struct {
	shell       *shell.Shell
	host        string
	port        string
	prefixes    map[interfaces.ContentType]string
	log         *slog.Logger
	locationURI string

	mu    sync.Mutex
	index map[string]string // content ID hex -> IPFS CID
}

// NewIPFSBackend creates a new IPFS storage backend connected to the
// specified host and port.
func NewIPFSBackend(host, port, timeout string, log *slog.Logger) (*IPFSBackend, error) {
	apiURL := fmt.Sprintf("%s:%s", host, port)
	uri := fmt.Sprintf("ipfs://%s/?timeout=%s", apiURL, timeout)

	return &IPFSBackend{
		shell: shell.NewShell(apiURL),
		host:  host,
		port:  port,
		prefixes: map[interfaces.ContentType]string{
			interfaces.ProofType: "proof",
			interfaces.EventType: "event",
		},
		log:         log,
		locationURI: uri,
		index:       make(map[string]string),
	}, nil
}

// Fetch retrieves data from IPFS by its content identifier and type.
// Returns ErrContentNotFound if the content was never stored through this
// backend, or ErrBackendUnavailable if the IPFS node is not accessible.
func (b *IPFSBackend) Fetch(ctx context.Context, id interfaces.ContentID, contentType interfaces.ContentType) ([]byte, error) {
	start := time.Now()
	contentIDStr := fmt.Sprintf("%x", id[:8])

	b.mu.Lock()
	cid, indexed := b.index[b.indexKey(id, contentType)]
	b.mu.Unlock()

	if !indexed {
		return nil, interfaces.ErrContentNotFound
	}

	if !b.shell.IsUp() {
		b.log.Warn("IPFS node unavailable",
			slog.String("host", b.host),
			slog.String("port", b.port))
		return nil, interfaces.ErrBackendUnavailable
	}

	reader, err := b.shell.Cat(cid)
	if err != nil {
		if strings.Contains(err.Error(), "no link named") {
			b.log.Debug("Content not found in IPFS",
				slog.String("cid", cid),
				slog.String("content_id", contentIDStr),
				slog.Duration("duration", time.Since(start)))
			return nil, interfaces.ErrContentNotFound
		}

		b.log.Error("Failed to fetch data from IPFS",
			slog.String("cid", cid),
			slog.String("content_id", contentIDStr),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to fetch data from IPFS: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		b.log.Error("Failed to read data from IPFS",
			slog.String("cid", cid),
			slog.String("content_id", contentIDStr),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to read data from IPFS: %w", err)
	}

	b.log.Debug("Fetched content from IPFS",
		slog.String("cid", cid),
		slog.String("content_id", contentIDStr),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Store adds data to IPFS and returns its content identifier. The
// identifier is the SHA-256 hash of the data. Returns ErrBackendUnavailable
// if the IPFS node is not accessible.
func (b *IPFSBackend) Store(ctx context.Context, data []byte, contentType interfaces.ContentType) (interfaces.ContentID, error) {
	hash := sha256.Sum256(data)
	id := interfaces.ContentID(hash)

	if !b.shell.IsUp() {
		return id, interfaces.ErrBackendUnavailable
	}

	cid, err := b.shell.Add(bytes.NewReader(data))
	if err != nil {
		return id, fmt.Errorf("failed to add data to IPFS: %w", err)
	}

	b.mu.Lock()
	b.index[b.indexKey(id, contentType)] = cid
	b.mu.Unlock()

	b.log.Debug("Stored content in IPFS",
		slog.String("ipfsCID", cid),
		slog.String("contentID", id.String()),
		slog.String("contentType", contentType.String()))

	return id, nil
}

// Available checks if the IPFS node is accessible.
func (b *IPFSBackend) Available(ctx context.Context) bool {
	return b.shell.IsUp()
}

// Name returns a unique identifier for this storage backend.
func (b *IPFSBackend) Name() string {
	return fmt.Sprintf("ipfs-%s-%s", b.host, b.port)
}

// LocationURI returns the URI that identifies this storage backend.
func (b *IPFSBackend) LocationURI() string {
	return b.locationURI
}

// indexKey builds the local index key for a content ID and type.
func (b *IPFSBackend) indexKey(id interfaces.ContentID, contentType interfaces.ContentType) string {
	return fmt.Sprintf("%s-%s", b.prefixes[contentType], id.String())
}
