// Package client contains client-side building blocks for VaultChat.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the VaultChat backend: the two-step registration and login flows,
//     session management (Logout, RevokeOtherSessions), presigned attachment
//     URL helpers and the relay stream (OpenChannel).
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the session token via an interceptor, and maps
//     gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrConflict, ErrNotFound.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
