package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
)

const checksumHeader = "X-Content-Checksum"

// withContentChecksum verifies an optional X-Content-Checksum header (hex
// BLAKE2b-256) against the request body. The body is buffered and restored
// for the next handler. Bodies above the attachment limit are cut off and
// left to the service validation.
func (h *Handler) withContentChecksum(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var body bytes.Buffer
		got, _, err := utils.ChecksumReader(io.TeeReader(io.LimitReader(r.Body, validators.MaxAttachmentSize+1), &body))
		if err != nil {
			log.Err(err).Str("func", "Handler.withContentChecksum").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(&body)

		want := strings.ToLower(strings.TrimSpace(r.Header.Get(checksumHeader)))
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		if got != want {
			log.Error().Str("func", "Handler.withContentChecksum").
				Str("checksum from request", want).
				Str("checksum of body", got).
				Msg("checksums are not equal")
			writeError(w, r, "Handler.withContentChecksum", ErrChecksumMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}
