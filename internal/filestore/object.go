package filestore

import "time"

// ObjectInfo describes a single object stored in a bucket.
type ObjectInfo struct {
	// Bucket the object lives in.
	Bucket string

	// Key is the full object path within the bucket (e.g. "models/users.ts").
	Key string

	// Size is the byte size of the object. -1 if unknown.
	Size int64

	ContentType string

	// ETag is the object's entity tag / hash, as returned by the backend.
	ETag string

	// LastModified is when the object was last written.
	// May be zero after a put; the backend only reports it on stat.
	LastModified time.Time
}

// Location renders the object as "<bucket>/<key>".
func (o *ObjectInfo) Location() string {
	return o.Bucket + "/" + o.Key
}
