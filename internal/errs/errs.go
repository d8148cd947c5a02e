package errs

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrRateLimited        = errors.New("rate limited")
)

// Codes are the machine readable identifiers written as error_code.
const (
	CodeValidation         = "validation_error"
	CodeUnauthenticated    = "unauthenticated"
	CodeNotFound           = "not_found"
	CodeStorageUnavailable = "storage_unavailable"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal_error"
)

const detailsPrefix = "__json__:"

type kind struct {
	sentinel error
	status   int
	code     string
}

var kinds = []kind{
	{ErrValidation, http.StatusBadRequest, CodeValidation},
	{ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
	{ErrNotFound, http.StatusNotFound, CodeNotFound},
	{ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited},
	{ErrStorageUnavailable, http.StatusInternalServerError, CodeStorageUnavailable},
}

// Builder assembles an error chain. Mark must be the last call.
type Builder struct {
	err error
}

func New(msg string) *Builder {
	return &Builder{err: errors.New(msg)}
}

func Wrap(err error, msg string) *Builder {
	return &Builder{err: errors.Wrap(err, msg)}
}

// WithHint sets the message shown to API callers.
func (b *Builder) WithHint(hint string) *Builder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

func (b *Builder) WithDetails(details map[string]any) *Builder {
	raw, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, detailsPrefix+"%s", errors.Safe(string(raw)))
	return b
}

func (b *Builder) Mark(reference error) error {
	return errors.Mark(b.err, reference)
}

func NotFound(entity string) error {
	return New(entity + " not found").
		WithHint(capitalize(entity) + " not found").
		Mark(ErrNotFound)
}

func Storage(err error, op string) error {
	return Wrap(err, op).
		WithHint("The service is temporarily unavailable. Please try again later.").
		Mark(ErrStorageUnavailable)
}

func Unauthenticated(msg string) error {
	return New(msg).
		WithHint("Invalid credentials").
		Mark(ErrUnauthenticated)
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool      { return errors.Is(err, ErrValidation) }
func IsUnauthenticated(err error) bool { return errors.Is(err, ErrUnauthenticated) }
func IsStorage(err error) bool         { return errors.Is(err, ErrStorageUnavailable) }
func IsRateLimited(err error) bool     { return errors.Is(err, ErrRateLimited) }

// HTTPStatus resolves the response status and error code for err.
func HTTPStatus(err error) (int, string) {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// Hint returns the first non-empty hint in the chain, or fallback.
func Hint(err error, fallback string) string {
	for _, h := range errors.GetAllHints(err) {
		if h = strings.TrimSpace(h); h != "" {
			return h
		}
	}
	return fallback
}

// Details collects the reportable details attached with WithDetails.
func Details(err error) map[string]any {
	var out map[string]any
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if !strings.HasPrefix(payload, detailsPrefix) {
				continue
			}
			var m map[string]any
			if err := json.Unmarshal([]byte(payload[len(detailsPrefix):]), &m); err != nil {
				continue
			}
			if out == nil {
				out = make(map[string]any, len(m))
			}
			for k, v := range m {
				out[k] = v
			}
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
