// Package client contains client-side building blocks for EcoScan.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the EcoScan backend: Register/Login, Ping, upload URL issuance,
//     Classify, and record listing.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, and maps
//     gRPC status codes to sentinel errors.
//  3. A presigned-URL image uploader (see PresignImageStore) that asks the
//     backend for an S3 PUT URL and pushes the image bytes over HTTP.
//  4. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrEmailTaken.
package client
