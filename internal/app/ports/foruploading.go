package ports

import "context"

type ForUploadingRequest struct {
	// Bucket or store to upload to.
	Store string
	// Key or name of target. If empty, default to the From field.
	To string
	// From is the path to upload from (local disk or URI depending on
	// adapter implementation).
	From        string
	ContentType string
	// StorageClass only used for AWS. Can be STANDARD,
	// REDUCED_REDUNDANCY, STANDARD_IA, ONEZONE_IA, INTELLIGENT_TIERING,
	// GLACIER, DEEP_ARCHIVE, and GLACIER_IR. If empty, STANDARD is the
	// default.
	StorageClass string
}

// ForUploading publishes the rendered feed document to remote
// storage. Media files are never uploaded or downloaded by this
// program; recordings already live under the media root.
type ForUploading interface {
	Upload(ctx context.Context, request *ForUploadingRequest) error
	// Diff downloads keyOrName from bucketOrStore and prints a unified
	// diff against the local fileToDiff to stdout. A missing remote
	// object is not an error (there is nothing to diff on first
	// publish).
	Diff(ctx context.Context, bucketOrStore, keyOrName, fileToDiff string) error
}
