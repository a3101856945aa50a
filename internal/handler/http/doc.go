// Package http exposes the local review cache to rendering layers that run
// out of process.
//
// It serves playlists, pending changes, drafts and attachment previews as
// JSON over chi, and streams change notifications from the event broker as
// server-sent events. Tracing, access logging and response compression are
// handled here before requests reach the service layer.
package http
