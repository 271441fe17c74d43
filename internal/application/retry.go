package application

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/linskybing/datadesk/internal/repository"
)

const readRetries = 1

// readWithRetry runs a store read under timeout and retries it once on
// transient errors. Missing records and cancelled contexts are final, as
// is a response row owned by someone else.
func readWithRetry[T any](ctx context.Context, timeout time.Duration, read func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 50 * time.Millisecond
	eb.MaxInterval = 500 * time.Millisecond

	var out T
	err := backoff.Retry(func() error {
		v, err := read(ctx)
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(eb, readRetries), ctx))

	return out, err
}

func isPermanent(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrResponseOwner) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
