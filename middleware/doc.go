// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /reviews", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms).

# Recovery

Recover converts a panic in any handler into a 500 with the fixed body

	{"success":false,"message":"Internal Server Error"}

The panic value and stack trace go to the log only.

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(mux)

Preflight OPTIONS requests are answered with 204. Credentials are only
allowed when the request names an Origin.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Error saving review")
	middleware.ValidationErrorResponse(w, msg, fields)

Parse JSON request bodies:

	var req models.SubmitReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
