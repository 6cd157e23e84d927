package augment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adamwoolhether/dynhttp/client/params"
)

// Augmenter computes the parameter set a request should carry.
//
// Augment receives a private snapshot of the request's existing parameters
// and returns the augmented set. Names in the result that already exist on
// the request are ignored by the rewriter. Returning an error, or a nil map,
// aborts the request.
type Augmenter interface {
	Augment(ctx context.Context, existing *params.Map) (*params.Map, error)
}

// Func adapts an ordinary function to the [Augmenter] interface.
type Func func(ctx context.Context, existing *params.Map) (*params.Map, error)

// Augment calls f(ctx, existing).
func (f Func) Augment(ctx context.Context, existing *params.Map) (*params.Map, error) {
	return f(ctx, existing)
}

// Static adds fixed name/value pairs, given alternately.
func Static(kv ...string) Augmenter {
	fixed := params.FromPairs(kv...)

	return Func(func(_ context.Context, existing *params.Map) (*params.Map, error) {
		out := existing.Clone()
		out.Merge(fixed)
		return out, nil
	})
}

// Timestamp adds name set to the current time in epoch milliseconds.
// A nil now uses time.Now.
func Timestamp(name string, now func() time.Time) Augmenter {
	if now == nil {
		now = time.Now
	}

	return Func(func(_ context.Context, existing *params.Map) (*params.Map, error) {
		out := existing.Clone()
		out.Add(name, strconv.FormatInt(now().UnixMilli(), 10))
		return out, nil
	})
}

// Token adds name set to the value returned by source. The token itself is
// acquired elsewhere; a source error fails the augmentation.
func Token(name string, source func(ctx context.Context) (string, error)) Augmenter {
	return Func(func(ctx context.Context, existing *params.Map) (*params.Map, error) {
		if source == nil {
			return nil, errors.New("token source must not be nil")
		}

		token, err := source(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquiring token: %w", err)
		}

		out := existing.Clone()
		out.Add(name, token)
		return out, nil
	})
}

// HMACSignature adds name set to the hex HMAC-SHA256 of the canonical form
// of every parameter present when it runs. Place it last in a [Chain] so the
// signature covers the parameters added before it.
func HMACSignature(name string, key []byte) Augmenter {
	return Func(func(_ context.Context, existing *params.Map) (*params.Map, error) {
		if len(key) == 0 {
			return nil, errors.New("signing key must not be empty")
		}

		mac := hmac.New(sha256.New, key)
		mac.Write([]byte(existing.Canonical()))

		out := existing.Clone()
		out.Add(name, hex.EncodeToString(mac.Sum(nil)))
		return out, nil
	})
}

// Chain runs each augmenter on the output of the previous one.
func Chain(augmenters ...Augmenter) Augmenter {
	return Func(func(ctx context.Context, existing *params.Map) (*params.Map, error) {
		current := existing
		for i, a := range augmenters {
			next, err := a.Augment(ctx, current.Clone())
			if err != nil {
				return nil, fmt.Errorf("chain step %d: %w", i, err)
			}
			if next == nil {
				return nil, fmt.Errorf("chain step %d: nil parameter map", i)
			}
			current = next
		}

		return current, nil
	})
}
