package app

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.logError(r, fmt.Errorf("%s", err))

				// Stack traces leave the process only in development.
				stack := ""
				if app.config.env == "dev" {
					stack = string(debug.Stack())
				}

				app.errorResponseWithDetails(w, r, http.StatusInternalServerError, ErrInternalServer, nil, stack)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
