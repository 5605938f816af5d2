package v1handler

import (
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const maxRequestBodyBytes = 64 << 10

// CreateScan accepts a domain and starts a scan in the background. It answers
// 202 as soon as the scan is recorded; findings arrive later.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body."))

		return
	}

	var req CreateScanRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body."))

		return
	}

	scan, err := h.deps.Scanner.Start(ctx, GetUserIDFromContext(ctx), req.Domain)
	if err != nil {
		NewError(ctx, w, err)

		return
	}

	var e jx.Encoder
	encodeScanAccepted(&e, scan)
	writeJSON(ctx, w, http.StatusAccepted, e.Bytes())
}

// ListScans returns a page of the caller's scans, newest first.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var limit uint64
	if v := query.Get("limit"); v != "" {
		l, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = l
	}

	scans, nextCursor, err := h.deps.Scanner.UserScans(ctx,
		GetUserIDFromContext(ctx),
		domain.ScanStatus(query.Get("status")),
		query.Get("cursor"),
		uint(limit))
	if err != nil {
		NewError(ctx, w, err)

		return
	}

	var e jx.Encoder
	encodeScanList(&e, scans, nextCursor)
	writeJSON(ctx, w, http.StatusOK, e.Bytes())
}

// GetScan returns one of the caller's scans with its findings.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	scan, err := h.deps.Scanner.Result(ctx, GetUserIDFromContext(ctx), domain.ScanID(ID))
	if err != nil {
		NewError(ctx, w, err)

		return
	}

	var e jx.Encoder
	encodeScan(&e, scan)
	writeJSON(ctx, w, http.StatusOK, e.Bytes())
}

// ListPatterns returns the catalog every scan is probed against.
func (h *Handler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	var e jx.Encoder
	encodePatterns(&e, h.deps.Scanner.Patterns())
	writeJSON(r.Context(), w, http.StatusOK, e.Bytes())
}
