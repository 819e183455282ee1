package domain

import "errors"

var ErrSendingReplyFailed = errors.New("failed to send reply")

// UnknownError is reported when the API fails without an error message.
const UnknownError = "Unknown error"

// RemoteError is a non-200 response from the ReadWatch API.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return UnknownError
	}

	return e.Message
}
