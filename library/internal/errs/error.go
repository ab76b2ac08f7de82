package errs

import (
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrBorrowNotFound = errors.New("borrow record not found or already returned")

	ErrAlreadyBorrowed      = errors.New("user has already borrowed this book")
	ErrBorrowLimitExceeded  = errors.New("borrow limit reached")
	ErrRenewalLimitExceeded = errors.New("renewal limit reached")
	ErrOverdueCannotRenew   = errors.New("overdue book cannot be renewed")
	ErrOutOfStock           = errors.New("book is out of stock")
	ErrUserInactive         = errors.New("user account is disabled")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateISBN        = errors.New("isbn already exists")
	ErrWrongPassword        = errors.New("old password is incorrect")

	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrAccountDisabled    = auth.ErrAccountDisabled
	ErrTokenExpired       = auth.ErrTokenExpired
	ErrTokenInvalid       = auth.ErrTokenInvalid

	ErrForbidden = errors.New("not enough permissions")

	ErrWeakPassword     = errors.New("password must be at least 6 characters and contain letters and digits")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrEmptyIDs         = errors.New("ids are required")
	ErrInvalidPeriod    = errors.New("days must be between 1 and 365")
	ErrSelfModification = errors.New("admin cannot disable or delete own account")
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUnprocessable
)

var kinds = map[Kind][]error{
	KindNotFound: {ErrNotFound, ErrUserNotFound, ErrBookNotFound, ErrBorrowNotFound},
	KindConflict: {
		ErrAlreadyBorrowed, ErrBorrowLimitExceeded, ErrRenewalLimitExceeded, ErrOverdueCannotRenew,
		ErrOutOfStock, ErrUserInactive, ErrDuplicateUsername, ErrDuplicateEmail, ErrDuplicateISBN,
		ErrWrongPassword, ErrSelfModification,
	},
	KindUnauthorized:  {ErrInvalidCredentials, ErrAccountDisabled, ErrTokenExpired, ErrTokenInvalid},
	KindForbidden:     {ErrForbidden},
	KindUnprocessable: {ErrWeakPassword, ErrInvalidPhone, ErrNothingToUpdate, ErrEmptyIDs, ErrInvalidPeriod},
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) Kind {
	for kind, sentinels := range kinds {
		for _, s := range sentinels {
			if errors.Is(err, s) {
				return kind
			}
		}
	}
	return KindInternal
}
