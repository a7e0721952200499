// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reviews holds the review submission rules and the service that
applies them.

# Validation

Validate turns a SubmitReviewRequest into a ReviewDraft:

	draft, err := reviews.Validate(req)

name, rating and review are required; a rating of 0 counts as missing.
The rating may arrive as a number or a numeric string and must be a whole
number between 1 and 5. imageUrl is optional and defaults to "".

# Service

	svc := reviews.NewService(store)
	review, err := svc.Submit(ctx, req)
	all, err := svc.ListAll(ctx)

# Errors

  - *ValidationError: the caller sent incomplete or out-of-range data
    (errors.Is(err, ErrValidation) also matches)
  - *PersistenceError: the store rejected the insert or query; unwraps to
    the store error

Invalid submissions are rejected before the store is called. Nothing is
retried.
*/
package reviews
