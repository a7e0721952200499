// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the review service.

# Handler Types

ReviewHandler wraps a reviews.Service, the page renderer, and the
runtime configuration:

	h := handlers.NewReviewHandler(reviews.NewService(store), pages, cfg)

# Submission

SubmitReview accepts a JSON body or a form post from the landing page.
Validation failures return 400 with the first broken rule's message and a
per-field map. Store failures return 500 with a fixed message; the
underlying error is only logged.

	POST /reviews → 201 {"success":true,"message":"Review submitted successfully!","review":{...}}
	              → 400 {"success":false,"message":"Name, rating, and review are required.","errors":{...}}
	              → 500 {"success":false,"message":"Error saving review"}

# Listing

ListReviews returns every stored review, oldest first, as a JSON array
or as an HTML page when the render mode is "html".

# Unmatched Routes

NotFound answers everything the router does not recognise with
404 {"success":false,"message":"Route not found"}.
*/
package handlers
