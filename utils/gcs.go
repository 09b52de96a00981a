package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func gcsClient(ctx context.Context) (*storage.Client, error) {
	// Prefer ADC (service account / GOOGLE_APPLICATION_CREDENTIALS). Set
	// GCS_CREDENTIALS_JSON to pass explicit JSON locally.
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

// UploadBackupToGCS writes a backup document to the bucket named by
// BACKUP_BUCKET. Callers skip the upload entirely when the variable is unset.
func UploadBackupToGCS(ctx context.Context, objectName string, data []byte) error {
	bucketName := os.Getenv("BACKUP_BUCKET")
	if bucketName == "" {
		return fmt.Errorf("BACKUP_BUCKET is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := gcsClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	wc := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = "application/json"
	if _, err := wc.Write(data); err != nil {
		return fmt.Errorf("failed to upload backup to Google Cloud Storage: %v", err)
	}
	return wc.Close()
}
