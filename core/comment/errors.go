package comment

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrEditWindowExpired = errors.New("edit window expired")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrValidationFailed  = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal error")
)

var (
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrParentNotFound  = fmt.Errorf("parent comment %w", ErrNotFound)
	ErrTargetNotFound  = fmt.Errorf("comment target %w", ErrNotFound)

	ErrNotCommentAuthor   = fmt.Errorf("%w: only the author can edit a comment", ErrForbidden)
	ErrNotAllowedToDelete = fmt.Errorf("%w: only the author or an administrator can delete a comment", ErrForbidden)
	ErrNotModerator       = fmt.Errorf("%w: only an administrator can moderate a comment", ErrForbidden)

	ErrSelfFlag                = fmt.Errorf("%w: users can't flag their own comment", ErrInvalidOperation)
	ErrCommentDeleted          = fmt.Errorf("%w: comment is deleted", ErrInvalidOperation)
	ErrAttachmentsNotSupported = fmt.Errorf("%w: attachment storage is not configured", ErrInvalidOperation)
	ErrModerationTransition    = fmt.Errorf("%w: moderation transition not allowed", ErrInvalidOperation)

	ErrEmptyCommentAuthor  = fmt.Errorf("%w: comment author can't be empty", ErrValidationFailed)
	ErrEmptyCommentContent = fmt.Errorf("%w: comment content can't be empty", ErrValidationFailed)
	ErrCommentTooLong      = fmt.Errorf("%w: comment content is too long", ErrValidationFailed)
	ErrInvalidTargetKind   = fmt.Errorf("%w: root comments can only target an idea or a domain", ErrValidationFailed)
	ErrEmptyTargetID       = fmt.Errorf("%w: comment target id can't be empty", ErrValidationFailed)
	ErrEmptyParentID       = fmt.Errorf("%w: parent comment id can't be empty", ErrValidationFailed)
	ErrEmptyUserID         = fmt.Errorf("%w: user id can't be empty", ErrValidationFailed)
	ErrEmptyFlagReason     = fmt.Errorf("%w: flag reason can't be empty", ErrValidationFailed)
	ErrTooManyAttachments  = fmt.Errorf("%w: too many attachments", ErrValidationFailed)
	ErrAttachmentTooLarge  = fmt.Errorf("%w: attachment is too large", ErrValidationFailed)
	ErrInvalidModeration   = fmt.Errorf("%w: invalid moderation event", ErrValidationFailed)

	ErrStatusChanged = fmt.Errorf("%w: comment status changed concurrently", ErrConflict)
)

var taxonomy = []error{
	ErrNotFound,
	ErrForbidden,
	ErrEditWindowExpired,
	ErrInvalidOperation,
	ErrValidationFailed,
	ErrConflict,
	ErrInternal,
}

// IsKnownError reports whether err belongs to the error taxonomy of this package
func IsKnownError(err error) bool {
	for _, e := range taxonomy {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
