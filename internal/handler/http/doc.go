// Package http implements the read-only reporting surface of the client.
//
// It exposes the readiness status, the local ledger view and the report
// built from the snapshot cache. Request tracing, access logging and
// response compression are handled here before requests reach the service
// layer; nothing in this package issues remote ledger calls.
package http
