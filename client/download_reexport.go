package client

import (
	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/download"
	"github.com/adamwoolhether/dynhttp/client/request"
)

// Type aliases re-exporting user-facing types from the subpackages.
type (
	// DownloadError carries the failing stage of a download.
	DownloadError = download.Error

	// DownloadResult represents an in-flight or completed download.
	DownloadResult = download.Result

	// Observer receives download notifications.
	Observer = download.Observer

	// AugmentError reports a failed augmentation.
	AugmentError = augment.Error
)

var (
	// ErrChecksumMismatch indicates the file checksum did not match the expected value.
	ErrChecksumMismatch = download.ErrChecksumMismatch

	// ErrDownloadCancelled indicates the download was cancelled via context.
	ErrDownloadCancelled = download.ErrDownloadCancelled

	// ErrGroupShutdown indicates the download queue was shut down.
	ErrGroupShutdown = download.ErrGroupShutdown

	// ErrAugmentationFailed is wrapped by every augmentation failure.
	ErrAugmentationFailed = augment.ErrAugmentationFailed

	// ErrConflictingBody indicates more than one body option was given.
	ErrConflictingBody = request.ErrConflictingBody
)
