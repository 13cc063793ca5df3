// SPDX-License-Identifier: EPL-2.0

// Package artifact keeps exported audio blobs alive behind revocable
// handles.
//
// Encoded takes (WAV bytes, typically) are registered once and then
// referenced by handle from tracks, players and download paths. A
// handle resolves until it is revoked:
//
//	store := artifact.NewStore()
//	h := store.Create(wavBytes, "audio/wav",
//	    artifact.RecordingName(time.Now(), 16000))
//
//	a, ok := store.Resolve(h)
//	// ... serve or save a.Data under a.Name
//
//	store.Revoke(h) // release when no consumer references it
//
// Revocation is idempotent; a revoked handle simply stops resolving.
// Handles are never reused. Dropping a handle without revoking it
// keeps the blob in memory for the life of the store, so owners of
// short-lived UI state should revoke eagerly or use RevokeAll on
// teardown.
package artifact
