package service

import "errors"

/**
 * @time: 2024/11/5 19:05
 * @file: errors.go
 * @description: service failure sentinels mapped to responses by the router
 */

var (
	ErrTitleRequired           = errors.New("meeting title is required")
	ErrInvalidStatus           = errors.New("invalid status parameter")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrMeetingIdRequired       = errors.New("meeting id required")
	ErrParticipantNotFound     = errors.New("participants not found")
	ErrInvalidInviteToken      = errors.New("invalid invite token")
	ErrUserExists              = errors.New("user already exists")
	ErrUserNotFound            = errors.New("user not found")
	ErrIncorrectPassword       = errors.New("incorrect password")
	ErrCredentialsRequired     = errors.New("username and password are required")
)
