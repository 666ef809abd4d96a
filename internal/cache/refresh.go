package cache

import (
	"github.com/sirupsen/logrus"
)

// Fonte marks where a response payload came from.
type Fonte string

const (
	FonteCache Fonte = "cache"
	FonteAPI   Fonte = "api"
)

// PersistPolicy names what happens when writing the refreshed payload back
// to the cache table fails.
type PersistPolicy int

const (
	// PersistBestEffort logs the write failure and still returns the fresh
	// payload; the next request simply refreshes again. This is the policy
	// for every handler in this service.
	PersistBestEffort PersistPolicy = iota
	// PersistRequired fails the request when the cache write fails.
	PersistRequired
)

// Refresh runs the shared fetch-cache-upsert cycle: consult the cache via
// lookup, and on a stale/missing entry fetch fresh data and persist it.
//
// lookup returns (cached, fresh): when fresh is true the cached value is
// returned and no external call happens. fetch must perform the external
// request and the transform. persist upserts the transformed payload and is
// subject to policy.
func Refresh[T any](
	op string,
	log logrus.FieldLogger,
	policy PersistPolicy,
	lookup func() (T, bool, error),
	fetch func() (T, error),
	persist func(T) error,
) (T, Fonte, error) {
	var zero T

	cached, fresh, err := lookup()
	if err != nil {
		// A broken cache read is not fatal: fall through to the upstream,
		// the same way a cold cache would.
		log.WithError(err).WithField("operation", op).Warn("cache lookup failed, fetching from upstream")
	} else if fresh {
		return cached, FonteCache, nil
	}

	data, err := fetch()
	if err != nil {
		return zero, "", err
	}

	if err := persist(data); err != nil {
		if policy == PersistRequired {
			return zero, "", err
		}
		log.WithError(err).WithField("operation", op).Warn("cache write failed, returning fresh data anyway")
	}

	return data, FonteAPI, nil
}
