// internal/dateutil/dateutil.go

// Package dateutil разбирает даты из фиксированного набора форматов.
package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
)

// acceptedFormats — явный список принимаемых форматов, в порядке попыток.
var acceptedFormats = []string{
	"2006-01-02", // ISO
	"02.01.2006", // DD.MM.YYYY
	"2006.01.02", // YYYY.MM.DD
}

// Parse разбирает строку даты. При неудаче возвращает ErrValidation
// с перечислением допустимых форматов.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: неверный формат даты %q, допустимо: YYYY-MM-DD, DD.MM.YYYY, YYYY.MM.DD",
		apperrors.ErrValidation, s)
}

// Format возвращает дату в ISO-виде (так её отдаёт API).
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}
