package command

import (
	"context"
	"errors"
	"net/url"
	"readwatch/internal/core/domain"
)

const (
	timeoutReason     = "request timed out"
	unreachableReason = "could not reach ReadWatch"
	badResponseReason = "unexpected response from ReadWatch"
)

// failureReason extracts the text shown to the user for a failed API call.
// Transport details stay in the logs.
func failureReason(err error) string {
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Error()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutReason
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return unreachableReason
	}

	return badResponseReason
}
