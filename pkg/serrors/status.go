package serrors

import "net/http"

// StatusNetwork is the pseudo status reported when no HTTP response was received.
const StatusNetwork = 0

// KindFromStatus classifies an HTTP status code returned by the backend.
// Classification is by status only; the response body never changes the kind.
func KindFromStatus(status int) Kind {
	switch {
	case status == StatusNetwork:
		return ErrUnavailable
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrTimeout
	case status >= http.StatusInternalServerError:
		return ErrInternal
	case status >= http.StatusBadRequest:
		return ErrBadRequest
	default:
		return ErrInternal
	}
}

// HTTPStatus maps a kind to the status code a page or JSON endpoint responds with.
func HTTPStatus(k Kind) int {
	switch k {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusBadGateway
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
