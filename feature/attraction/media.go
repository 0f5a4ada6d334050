package attraction

import (
	"context"
	"fmt"

	"attraction-catalog/core/storage"
	"attraction-catalog/feature/attraction/models"

	"github.com/minio/minio-go/v7"
)

// ThumbnailPrefix is the object key prefix under which attraction
// thumbnails are stored.
const ThumbnailPrefix = "thumbnails/"

// MediaReport lists catalog records whose thumbnail object is absent from
// the media bucket.
type MediaReport struct {
	// Checked counts active records that declare a thumbnail.
	Checked int `json:"checked"`

	// Missing holds the ids of records whose thumbnail object was not
	// found in the bucket.
	Missing []string `json:"missing,omitempty"`
}

// CheckThumbnails lists the bucket's thumbnail objects once and reports
// every active record whose declared thumbnail is absent. Records without
// a thumbnail are skipped; the catalog treats media as optional.
func CheckThumbnails(ctx context.Context, client storage.Client, bucket string, records []models.AttractionRecord) (*MediaReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	// Single-pass listing; no per-record stat calls.
	present := make(map[string]struct{})
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    ThumbnailPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list thumbnails: %w", obj.Err)
		}
		present[obj.Key] = struct{}{}
	}

	report := &MediaReport{}
	for _, rec := range records {
		if !rec.IsActive || rec.Thumbnail == "" {
			continue
		}
		report.Checked++
		if _, ok := present[rec.Thumbnail]; !ok {
			report.Missing = append(report.Missing, rec.ID)
		}
	}

	return report, nil
}
