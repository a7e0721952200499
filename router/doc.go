// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the review service.

# Route Registration

NewRouter builds the handler chain for a store and configuration:

	handler, err := router.NewRouter(store, cfg)

# Endpoints

	GET  /health     - {"status":"OK"}
	GET  / or /home  - Landing page with the submission form (cfg.LandingPath)
	GET  /static/... - Embedded CSS
	POST /reviews    - Submit a review (JSON or form post)
	GET  /reviews    - All reviews as JSON or HTML (cfg.RenderMode)
	GET  /metrics    - Prometheus metrics

Any other method or path gets

	404 {"success":false,"message":"Route not found"}

# Middleware

Outermost first: metrics.InstrumentHandler, middleware.CORS,
middleware.Recover, then the mux. Page and review routes also get
middleware.WithLogging.
*/
package router
