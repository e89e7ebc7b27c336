package archive

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"upkeep/internal/domain/entity"
	"upkeep/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketArchiver_Archive(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	archiver := NewBucketArchiver(bucket, "/snapshots/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer archiver.Close()

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	records := []*entity.MaintenanceHistory{
		{ID: uuid.New(), TaskName: "Inspect belts", CycleNumber: 1, ScheduledDate: day, SnapshotType: entity.SnapshotDaily},
		{ID: uuid.New(), TaskName: "Replace filter", CycleNumber: 2, ScheduledDate: day, SnapshotType: entity.SnapshotDaily},
	}

	require.NoError(t, archiver.Archive(ctx, "org-1/2024-03-05", records))

	raw, err := bucket.ReadAll(ctx, "snapshots/org-1/2024-03-05.jsonl")
	require.NoError(t, err)

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		var record entity.MaintenanceHistory
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		names = append(names, record.TaskName)
	}
	assert.Equal(t, []string{"Inspect belts", "Replace filter"}, names)

	attrs, err := bucket.Attributes(ctx, "snapshots/org-1/2024-03-05.jsonl")
	require.NoError(t, err)
	assert.Equal(t, util.Checksum(raw), attrs.Metadata["sha256"])
	assert.Equal(t, contentType, attrs.ContentType)
}

func TestBucketArchiver_ArchiveEmpty(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	archiver := NewBucketArchiver(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer archiver.Close()

	require.NoError(t, archiver.Archive(ctx, "empty", nil))

	exists, err := bucket.Exists(ctx, "empty.jsonl")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNoopArchiver(t *testing.T) {
	var archiver noopArchiver

	assert.NoError(t, archiver.Archive(context.Background(), "k", nil))
	assert.NoError(t, archiver.Close())
}
