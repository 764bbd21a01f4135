package options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions holds the --month flag.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		Wrap80(`Month to show, by number or name, example: --month=2 or --month=feb. Defaults to the current month.`))
}

// GetMonth returns the requested month, or 0 when none was given.
func (o *MonthOptions) GetMonth() (time.Month, error) {
	s := strings.TrimSpace(strings.ToLower(o.Month))
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("options: month %d out of range", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if name == s || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("options: unknown month %q", o.Month)
}
