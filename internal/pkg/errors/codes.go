package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidForm = New(
		"INVALID_FORM",
		"Required form fields are missing or do not match",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid username and/or password",
		http.StatusUnauthorized,
	)

	ErrUsernameTaken = New(
		"USERNAME_TAKEN",
		"Username is already taken",
		http.StatusConflict,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Login required",
		http.StatusUnauthorized,
	)

	ErrBinNotFound = New(
		"BIN_NOT_FOUND",
		"Route bin not found",
		http.StatusNotFound,
	)

	ErrEmptySegment = New(
		"EMPTY_SEGMENT",
		"Segment has no points",
		http.StatusBadRequest,
	)

	ErrUpstream = New(
		"UPSTREAM_ERROR",
		"Segment provider request failed",
		http.StatusBadGateway,
	)

	ErrDirectionsUpstream = New(
		"DIRECTIONS_UPSTREAM_ERROR",
		"Directions provider request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
