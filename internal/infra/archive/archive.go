// Package archive exports daily maintenance snapshots to blob storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const contentType = "application/x-ndjson"

// Params holds dependencies for the archiver, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotArchiver opens archive.bucketUrl, or returns a no-op archiver when it is empty.
func NewSnapshotArchiver(params Params) (service.SnapshotArchiver, error) {
	cfg := params.Config.Archive
	if cfg == nil || strings.TrimSpace(cfg.BucketURL) == "" {
		params.Logger.Info("[Archive] Bucket not configured, snapshots stay in the database only")

		return noopArchiver{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.BucketURL)
	}

	archiver := NewBucketArchiver(bucket, cfg.Prefix, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return archiver.Close()
		},
	})

	return archiver, nil
}

// bucketArchiver writes one JSON-lines object per archive key.
type bucketArchiver struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// NewBucketArchiver wraps an already opened bucket.
func NewBucketArchiver(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.SnapshotArchiver {
	return &bucketArchiver{
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Archive writes records to <prefix>/<key>.jsonl, replacing any earlier export with the same key.
// The object carries a sha256 metadata entry over its body.
func (a *bucketArchiver) Archive(ctx context.Context, key string, records []*entity.MaintenanceHistory) error {
	objectKey := path.Join(a.prefix, key+".jsonl")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return errors.Wrapf(err, "failed to encode archive record %s", record.ID)
		}
	}

	payload := buf.Bytes()
	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"sha256": util.Checksum(payload)},
	}
	if err := a.bucket.WriteAll(ctx, objectKey, payload, opts); err != nil {
		return errors.Wrapf(err, "failed to write archive object %s", objectKey)
	}

	a.logger.InfoContext(ctx, "[Archive] Snapshot archived",
		slog.String("key", objectKey),
		slog.Int("records", len(records)),
		slog.String("size", util.FormatBytes(int64(len(payload)))),
	)

	return nil
}

func (a *bucketArchiver) Close() error {
	return errors.WithStack(a.bucket.Close())
}

type noopArchiver struct{}

func (noopArchiver) Archive(context.Context, string, []*entity.MaintenanceHistory) error {
	return nil
}

func (noopArchiver) Close() error {
	return nil
}
