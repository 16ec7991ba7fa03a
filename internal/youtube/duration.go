package youtube

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// FormatDuration renders an ISO-8601 duration (PT1H2M3S) as H:MM:SS,
// prefixed with "N day(s), " for long streams. Unparseable input is returned as is.
func FormatDuration(iso string) string {
	d, err := duration.Parse(iso)
	if err != nil {
		return iso
	}

	total := int64(d.ToTimeDuration() / time.Second)
	if total < 0 {
		total = 0
	}

	days := total / 86400
	rem := total % 86400
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, (rem%3600)/60, rem%60)

	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
	return clock
}
