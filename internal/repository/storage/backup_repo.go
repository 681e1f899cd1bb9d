package storage

import "context"

// BackupRepository defines the interface for off-site snapshot backups
type BackupRepository interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, objectPath string) error
}
