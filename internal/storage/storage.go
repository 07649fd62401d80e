package storage

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrDisabled = errors.New("object storage is not configured")

// ObjectStore keeps uploaded files and hands out their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// DeleteAll removes keys concurrently. Failures are logged and counted but
// never returned, so callers can finish their database work regardless.
func DeleteAll(ctx context.Context, store ObjectStore, log *zap.Logger, keys []string) (deleted, failed int) {
	if len(keys) == 0 {
		return 0, 0
	}

	var ok, bad atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, key := range keys {
		g.Go(func() error {
			if err := store.Delete(gctx, key); err != nil {
				log.Warn("object delete failed", zap.String("key", key), zap.Error(err))
				bad.Add(1)
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(ok.Load()), int(bad.Load())
}

// Disabled is used when no bucket is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Delete(context.Context, string) error {
	return ErrDisabled
}
