package output

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/koustreak/dtogen/internal/errs"
	"github.com/koustreak/dtogen/internal/filestore"
	"github.com/koustreak/dtogen/internal/logger"
)

// ContentType is the MIME type objects are uploaded with.
const ContentType = "application/typescript"

// Mirror writes to a primary sink and then uploads the same content to an
// object store at <prefix>/<name>. A failed upload fails the write.
type Mirror struct {
	primary Sink
	store   filestore.Store
	bucket  string
	prefix  string
}

// NewMirror wraps primary so every file is also put into bucket.
func NewMirror(primary Sink, store filestore.Store, bucket, prefix string) *Mirror {
	return &Mirror{primary: primary, store: store, bucket: bucket, prefix: prefix}
}

func (m *Mirror) Write(ctx context.Context, name string, content []byte) (string, error) {
	loc, err := m.primary.Write(ctx, name, content)
	if err != nil {
		return "", err
	}

	key := path.Join(m.prefix, name)
	info, err := m.store.PutObject(ctx, m.bucket, key, bytes.NewReader(content), int64(len(content)), ContentType)
	if err != nil {
		return "", errs.Wrap(errs.ErrKindWriteFailed, fmt.Sprintf("cannot upload %s/%s", m.bucket, key), err)
	}

	logger.FromContext(ctx).With().
		Str("object", info.Location()).
		Str("etag", info.ETag).
		Logger().Debug("uploaded dto")

	return loc, nil
}
