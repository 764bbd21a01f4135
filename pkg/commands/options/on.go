package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions holds the --on date flag.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		Wrap80(`Specify a date, example: --on="2024-2-28" or --on="2/28". Short dates are in the current year. Also accepts "today" and "yesterday".`))
}

// GetOn returns the requested day in now's location, or nil when no date was
// given.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(o.OnString))
	switch s {
	case "":
		return nil, nil
	case "today":
		return &now, nil
	case "yesterday":
		t := now.AddDate(0, 0, -1)
		return &t, nil
	}

	t, err := time.ParseInLocation(layoutISO, s, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, s, now.Location())
		if err != nil {
			return nil, fmt.Errorf("options: invalid date %q", o.OnString)
		}
		// Habits only track the current year.
		if t.Day() > calendar.DaysInMonth(now.Year(), t.Month()) {
			return nil, fmt.Errorf("options: %d has no %s %d", now.Year(), t.Month(), t.Day())
		}
		t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	}
	return &t, nil
}
