package controller

import (
	"errors"
	"net/http"
	"newsroom/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover answers 500 when a handler panics and logs the panic with its
// stack. http.ErrAbortHandler is re-raised so the server aborts the response.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.Error(r.Context(), "handler panicked", zap.Any("panic", rvr), zap.Stack("stack"))
			if r.Header.Get("Connection") != "Upgrade" {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
