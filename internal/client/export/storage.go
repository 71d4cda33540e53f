// Package export turns a recommendation result set into a downloadable
// report document. The rendered report is written through a Storage backend:
// a local directory by default, or an S3 bucket when one is configured.
package export

import "context"

// Storage persists a rendered report and returns its location.
type Storage interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
