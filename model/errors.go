package model

import (
	"errors"
	"fmt"
)

// terminal pipeline errors, mapped to HTTP statuses by the controller
var (
	ErrMissingUser    = errors.New("MISSING_USER_PARAMETER")
	ErrMissingToken   = errors.New("MISSING_GITHUB_TOKEN")
	ErrNoRepositories = errors.New("NO_REPOSITORIES_FOUND")
	ErrRateLimited    = errors.New("RATE_LIMIT_REACHED")
)

// UpstreamErrorKind distinguishes which github call failed
type UpstreamErrorKind string

const (
	UpstreamList UpstreamErrorKind = "REPOSITORY_LIST"
	UpstreamTree UpstreamErrorKind = "BRANCH_TREE"
)

// UpstreamError is a non success response from github that is not one of the
// tolerated empty conditions (branch not found, empty repository)
type UpstreamError struct {
	Kind       UpstreamErrorKind
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github %s request failed with status %d: %s", e.Kind, e.StatusCode, e.Body)
}

// APIError is the json error payload returned to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	var upstreamErr *UpstreamError

	switch {
	case errors.Is(errReason, ErrMissingUser):
		return APIError{
			Code:    ErrMissingUser.Error(),
			Message: "the user query parameter is required",
		}

	case errors.Is(errReason, ErrMissingToken):
		return APIError{
			Code:    ErrMissingToken.Error(),
			Message: "no github token configured. set GITHUB_TOKEN or the GITHUB section of the config file",
		}

	case errors.Is(errReason, ErrNoRepositories):
		return APIError{
			Code:    ErrNoRepositories.Error(),
			Message: "no repository left after filtering. check the user name and the exclude_repos, include_forks and include_archived parameters",
		}

	case errors.Is(errReason, ErrRateLimited):
		return APIError{
			Code:    ErrRateLimited.Error(),
			Message: "github rate limit reached. wait a few minutes and try again",
		}

	case errors.As(errReason, &upstreamErr):
		return APIError{
			Code:    "UPSTREAM_ERROR",
			Message: errReason.Error(),
		}

	default:
		return APIError{
			Code:    "GENERIC_ERROR",
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}
}
