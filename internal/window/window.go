package window

import (
	"strconv"
	"strings"
	"time"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
)

// Resolve turns a target calendar date in tzName into the half-open day
// interval [midnight, midnight+24h) plus the labels derived from it. When
// override is empty the date is "today" in that timezone; otherwise it must
// be YYYY-MM-DD. The current instant is a parameter so tests control it.
func Resolve(now time.Time, tzName, override string) (domain.TimeWindow, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return domain.TimeWindow{}, domain.NewConfigError("unknown timezone %q: %v", tzName, err)
	}

	var start time.Time
	if override = strings.TrimSpace(override); override != "" {
		y, m, d, err := parseOverride(override)
		if err != nil {
			return domain.TimeWindow{}, err
		}
		start = time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	} else {
		local := now.In(loc)
		start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	}

	// A flat 24h, not AddDate: across DST transitions the local day may be
	// 23h or 25h and the query window accepts that as-is.
	end := start.Add(24 * time.Hour)

	return domain.TimeWindow{
		Start: start,
		End:   end,
		Label: start.Format("02-01-2006"),
		Year:  start.Format("2006"),
		Month: start.Format("01"),
	}, nil
}

func parseOverride(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, domain.NewConfigError("bad DATE override %q: want YYYY-MM-DD", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, domain.NewConfigError("bad DATE override %q: %v", s, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
