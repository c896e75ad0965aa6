package budget

import (
	"errors"
	"fmt"
)

// ErrExceeded is wrapped by every error reporting a quota violation.
var ErrExceeded = errors.New("budget exceeded")

// ExceededError reports the usage which first went over the quota.
type ExceededError struct {
	Usage int64
	Quota int64
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("tried to read tag that was too big: tried to allocate %d bytes where max allowed is %d",
		e.Usage, e.Quota)
}

func (e *ExceededError) Unwrap() error { return ErrExceeded }

// Accounter tracks the cumulative cost of a decode against a quota.
//
// The zero value and a nil *Accounter are both unlimited.
type Accounter struct {
	quota int64
	usage int64
}

// New returns an accounter which fails once more than quota bytes have
// been accounted.  A quota of 0 never limits.
func New(quota int64) *Accounter {
	return &Accounter{quota: quota}
}

// Unlimited returns an accounter which never fails.
func Unlimited() *Accounter {
	return &Accounter{}
}

// AccountBits charges n bits, rounded down to whole bytes.
func (a *Accounter) AccountBits(n int64) error {
	if a == nil || a.quota == 0 {
		return nil
	}
	a.usage += n / 8
	if a.usage > a.quota {
		return &ExceededError{Usage: a.usage, Quota: a.quota}
	}
	return nil
}

// Usage returns the number of bytes accounted so far.  Unlimited
// accounters report 0.
func (a *Accounter) Usage() int64 {
	if a == nil {
		return 0
	}
	return a.usage
}

func (a *Accounter) Quota() int64 {
	if a == nil {
		return 0
	}
	return a.quota
}

func (a *Accounter) IsUnlimited() bool {
	return a == nil || a.quota == 0
}
