package models

import "errors"

// Contract errors. Each one means the caller handed the pipeline something
// outside its catalogs; none of them is retried.
var (
	// ErrUnsupportedFormat indicates a structured document whose file type
	// the extractor cannot segment.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownViewpoint indicates a viewpoint override that is not in the catalog.
	ErrUnknownViewpoint = errors.New("unknown viewpoint")

	// ErrUnknownStrategy indicates a strategy that is not in the catalog.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrUnknownOutputFormat indicates a render format the formatter does not support.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
