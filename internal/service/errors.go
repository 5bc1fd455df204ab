package service

import "errors"

var (
	ErrInternal      = errors.New("internal server error")
	ErrNotAuthorized = errors.New("user is not authorized")
	ErrNoAccess      = errors.New("no access")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrCountryNotFound = errors.New("country not found")
	ErrPlaceNotFound   = errors.New("place not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrCommentContentBlank = errors.New("comment content must not be blank")
	ErrInvalidTripDates    = errors.New("invalid trip dates")

	ErrFileMustBeImage              = errors.New("file must be an image")
	ErrFailedToUploadPostImageToCDN = errors.New("failed to upload post image to CDN")
)
