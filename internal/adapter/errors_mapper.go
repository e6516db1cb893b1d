package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/notepad-sync/models"
	"github.com/go-resty/resty/v2"
)

// tierLimitCode is the structured code of a quota violation.
const tierLimitCode = "TIER_LIMIT"

// tierLimitMessage is the English wording older servers send without a code.
// Matching it is a stopgap until every server returns tierLimitCode.
const tierLimitMessage = "too many assets on a non-pro notepad"

// mapHTTPError converts a non-2xx response into a [*TierLimitError] or a
// [*ServerError]. It returns nil for 2xx responses.
func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err != nil {
		errResp = models.ErrorResponse{Error: body}
	}

	if errResp.Code == tierLimitCode || strings.Contains(strings.ToLower(errResp.Error), tierLimitMessage) {
		return &TierLimitError{Op: op, Status: resp.StatusCode(), Message: errResp.Error}
	}

	return &ServerError{
		Op:      op,
		Status:  resp.StatusCode(),
		Code:    errResp.Code,
		Message: errResp.Error,
	}
}

// mapTransportError classifies an error returned before any response was
// received. Cancellation of the caller's ctx is passed through unchanged.
func mapTransportError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op, Err: err}
	}

	return &NetworkError{Op: op, Err: err}
}

// isRetryable reports whether a failed API call may be attempted again.
// Rejected credentials, unknown resources and cancellation are final; tier
// limits are filtered out before this check.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		switch serverErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return false
		default:
			return true
		}
	}

	var (
		netErr      *NetworkError
		timeoutErr  *TimeoutError
		protocolErr *ProtocolError
	)
	return errors.As(err, &netErr) || errors.As(err, &timeoutErr) || errors.As(err, &protocolErr)
}
