/*
 *     Copyright 2020 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/statsml/statsml/pkg/math"
)

// Run calls f until it succeeds, cancels, or maxAttempts is reached,
// sleeping a jittered exponential backoff between attempts.
func Run(ctx context.Context,
	initBackoff time.Duration,
	maxBackoff time.Duration,
	maxAttempts int,
	f func() (cancel bool, err error)) error {
	var (
		cancel bool
		cause  error
	)
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			select {
			case <-time.After(Backoff(initBackoff, maxBackoff, i)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		cancel, cause = f()
		if cause == nil || cancel {
			break
		}
	}

	return cause
}

// Backoff returns the sleep before the given attempt, doubling from
// initBackoff up to maxBackoff with up to half of it as jitter.
func Backoff(initBackoff, maxBackoff time.Duration, attempt int) time.Duration {
	if initBackoff <= 0 {
		return 0
	}

	backoff := initBackoff
	for i := 1; i < attempt && backoff < maxBackoff; i++ {
		backoff *= 2
	}
	backoff = math.Min(backoff, maxBackoff)

	jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
	return backoff/2 + jitter
}
