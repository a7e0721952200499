// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitReviewRequest: name, rating, review, imageUrl

Rating is a json.Number so both 5 and "5" decode; the reviews package
turns it into an int.

# Response Types

  - SubmitReviewResponse: success, message, review
  - HealthResponse: status
  - ErrorResponse: success (always false), message, errors

# Domain Types

  - Review: a stored review with its id and creation time
  - ReviewDraft: a validated review waiting to be stored

# Constants

	MinRating = 1
	MaxRating = 5
*/
package models
