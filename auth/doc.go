// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the operator endpoints.

A single HMAC-derived admin key, presented in the X-Admin-Key header,
protects the manual sweep and recount triggers. Voter identity needs no
tokens here - it comes from the messaging collaborator's account IDs.
*/
package auth
