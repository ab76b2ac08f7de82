package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
)

const maxPeriodDays = 365

// ScopeBorrowFilter restricts non-admin callers to their own records.
func ScopeBorrowFilter(p auth.Principal, f model.BorrowFilter) model.BorrowFilter {
	if !p.IsAdmin {
		id := p.UserID
		f.UserID = &id
	}
	return f
}

// Fine charges rate for every whole day between due and returned.
func Fine(due, returned time.Time, rate float64) float64 {
	return float64(model.DaysBetween(due, returned)) * rate
}

func (s *Service) period(days int) (int, error) {
	if days == 0 {
		return s.policy.DefaultDays, nil
	}
	if days < 1 || days > maxPeriodDays {
		return 0, errs.ErrInvalidPeriod
	}
	return days, nil
}

func noteSuffix(label string, notes *string) string {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return ""
	}
	return fmt.Sprintf(" [%s: %s]", label, strings.TrimSpace(*notes))
}
