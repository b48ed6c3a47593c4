// Package engine orchestrates Ackermann computation: persisted-result
// lookup, closed-form fast path, full evaluation, and result storage.
//
// The flow for a single Compute call is linear, with no branching back:
//
//	CacheCheck → OptimizeCheck → FullEvaluate → StoreAndReturn
//
// Cache and closed-form consultation happen only when optimization is
// enabled; a hit in either short-circuits the stages after it. Storage
// failures degrade to computing without persistence rather than failing the
// request. There are no retries anywhere: computation is deterministic and
// idempotent, so retrying could not change an outcome.
package engine
