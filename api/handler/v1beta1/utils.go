package v1beta1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/pkg/slices"
)

var (
	errUnauthenticated = errors.New("unable to get authenticated user from context")
	errInvalidBody     = errors.New("invalid request body")

	errInvalidFlaggedBefore = fmt.Errorf("%w: flagged_before must be an RFC3339 timestamp", comment.ErrValidationFailed)
)

type errorResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// parseCommaSeparatedValues accepts both "param=a,b" and "param=a&param=b",
// returning the distinct non-empty values sorted.
func parseCommaSeparatedValues(values []string) []string {
	if len(values) == 0 {
		return values
	}

	var parts []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return slices.GenericsStandardizeSlice(parts)
}

func queryInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer", comment.ErrValidationFailed, key)
	}
	return n, nil
}

func queryOptionalInt(q url.Values, key string) (*int, error) {
	if !q.Has(key) {
		return nil, nil
	}
	n, err := queryInt(q, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidBody, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// toStatus maps service errors onto grpc status codes so the http status
// follows the same conventions as grpc-gateway.
func toStatus(err error) *status.Status {
	switch {
	case errors.Is(err, errUnauthenticated):
		return status.New(codes.Unauthenticated, err.Error())
	case errors.Is(err, errInvalidBody),
		errors.Is(err, comment.ErrValidationFailed),
		errors.As(err, &validator.ValidationErrors{}):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, comment.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	case errors.Is(err, comment.ErrForbidden):
		return status.New(codes.PermissionDenied, err.Error())
	case errors.Is(err, comment.ErrEditWindowExpired),
		errors.Is(err, comment.ErrInvalidOperation):
		return status.New(codes.FailedPrecondition, err.Error())
	case errors.Is(err, comment.ErrConflict):
		return status.New(codes.Aborted, err.Error())
	default:
		return status.New(codes.Internal, "internal server error")
	}
}

func (s *HTTPServer) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	st := toStatus(err)
	if st.Code() == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err)
	}
	writeJSON(w, runtime.HTTPStatusFromCode(st.Code()), errorResponse{
		Code:    int32(st.Code()),
		Message: st.Message(),
	})
}
