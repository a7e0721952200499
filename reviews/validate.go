// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reviews

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-review/models"
)

// Client-facing validation messages
const (
	MsgMissingFields   = "Name, rating, and review are required."
	MsgRatingNotNumber = "Rating must be a number."
	MsgRatingNotWhole  = "Rating must be a whole number."
	MsgRatingRange     = "Rating must be between 1 and 5."
)

// rules outside the validator's own tags
const (
	ruleNumber  = "number"
	ruleInteger = "integer"
)

// ratings beyond this are clamped before range checks
const ratingClamp = 1_000_000

// reviewInput carries the rules; keep min/max in step with models.MinRating/MaxRating
type reviewInput struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a submission and returns the draft to store.
// A rating of 0 counts as missing.
func Validate(req models.SubmitReviewRequest) (models.ReviewDraft, error) {
	rating, ratingRule := parseRating(req.Rating)

	in := reviewInput{
		Name:   req.Name,
		Rating: rating,
		Review: req.Review,
	}

	fields := make(map[string]string)
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.ReviewDraft{}, err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	if ratingRule != "" {
		fields["rating"] = ratingRule
	}

	if len(fields) > 0 {
		return models.ReviewDraft{}, &ValidationError{
			Message: messageFor(fields),
			Fields:  fields,
		}
	}

	return models.ReviewDraft{
		Name:     req.Name,
		Rating:   rating,
		Review:   req.Review,
		ImageURL: req.ImageURL,
	}, nil
}

// parseRating returns the integer rating, or the rule it broke
func parseRating(n json.Number) (int, string) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, ""
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ruleNumber
	}
	if f != math.Trunc(f) {
		return 0, ruleInteger
	}

	f = math.Max(-ratingClamp, math.Min(ratingClamp, f))
	return int(f), ""
}

func messageFor(fields map[string]string) string {
	for _, rule := range fields {
		if rule == "required" {
			return MsgMissingFields
		}
	}

	switch fields["rating"] {
	case ruleNumber:
		return MsgRatingNotNumber
	case ruleInteger:
		return MsgRatingNotWhole
	}
	return MsgRatingRange
}
