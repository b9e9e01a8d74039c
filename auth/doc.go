// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity tokens, HMAC identity proofs, and
deterministic record-address derivation.

# Identity Proofs

Identities are random opaque tokens. A proof is an HMAC of the token under
a server-side salt, so verification needs no storage:

	identity, _ := auth.GenerateIdentity()
	proof := auth.IdentityProof(identity, salt)
	err := auth.VerifyIdentity(identity, proof, salt)

Requests present both values in the X-Identity and X-Identity-Proof
headers. CreatePoll's verified caller becomes the poll authority;
CastVote's verified caller is the voter wallet.

# Derived Addresses

DeriveAddress maps a stable key to a fixed storage address:

	pollID   := auth.DeriveAddress("poll", authority, title)
	ballotID := auth.DeriveAddress("ballot", pollID, wallet)

Record stores use the address as the primary key, which turns "has this
wallet already voted" into an allocation failure instead of a runtime
check.
*/
package auth
