package v1handler

import (
	"exposure/internal/exposure"
	"exposure/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// CreateScanRequest is the body of POST /v1/scans.
type CreateScanRequest struct {
	Domain string
}

// Decode reads the request from d. Unknown fields are ignored and a missing or
// null domain decodes to the empty string.
func (r *CreateScanRequest) Decode(d *jx.Decoder) error {
	if d.Next() != jx.Object {
		return errors.New("request body must be a JSON object")
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		if key != "domain" {
			return d.Skip()
		}

		switch d.Next() {
		case jx.Null:
			return d.Null()
		case jx.String:
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode domain")
			}
			r.Domain = v

			return nil
		default:
			return errors.New("domain must be a string")
		}
	})
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeFinding(e *jx.Encoder, f domain.Finding) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("url", func(e *jx.Encoder) { e.Str(f.URL) })
		e.Field("path", func(e *jx.Encoder) { e.Str(f.Path) })
		e.Field("description", func(e *jx.Encoder) { e.Str(f.Description) })
		e.Field("severity", func(e *jx.Encoder) { e.Str(string(f.Severity)) })
		e.Field("statusCode", func(e *jx.Encoder) { e.Int(f.StatusCode) })
	})
}

func encodeScan(e *jx.Encoder, s *domain.Scan) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("domain", func(e *jx.Encoder) { e.Str(s.Domain) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(s.Status)) })
		e.Field("findings", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, f := range s.Findings {
					encodeFinding(e, f)
				}
			})
		})
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, s.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, s.UpdatedAt) })
	})
}

func encodeScanList(e *jx.Encoder, scans []domain.Scan, nextCursor string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range scans {
					encodeScan(e, &scans[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if nextCursor == "" {
				e.Null()

				return
			}
			e.Str(nextCursor)
		})
	})
}

func encodeScanAccepted(e *jx.Encoder, s *domain.Scan) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) { e.Str("Scan initiated successfully") })
		e.Field("scanId", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(s.Status)) })
	})
}

func encodePatterns(e *jx.Encoder, patterns []exposure.Pattern) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range patterns {
					e.Obj(func(e *jx.Encoder) {
						e.Field("path", func(e *jx.Encoder) { e.Str(p.Path) })
						e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
						e.Field("severity", func(e *jx.Encoder) { e.Str(string(p.Severity)) })
						e.Field("rank", func(e *jx.Encoder) { e.Int(p.Severity.Rank()) })
					})
				}
			})
		})
	})
}

// EncodeEvent renders one event as sent on the event stream.
func EncodeEvent(e *jx.Encoder, ev domain.Event) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(string(ev.Type)) })
		e.Field("scanId", func(e *jx.Encoder) { e.Str(ev.ScanID.String()) })
		e.Field("userId", func(e *jx.Encoder) { e.Str(ev.UserID.String()) })
		if ev.Status != "" {
			e.Field("status", func(e *jx.Encoder) { e.Str(string(ev.Status)) })
		}
		if ev.Finding != nil {
			e.Field("finding", func(e *jx.Encoder) { encodeFinding(e, *ev.Finding) })
		}
		e.Field("at", func(e *jx.Encoder) { encodeTime(e, ev.At) })
	})
}

func encodeError(e *jx.Encoder, msg string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
	})
}
