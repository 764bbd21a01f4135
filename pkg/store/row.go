package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
)

// rowFields is the number of comma separated fields in a stored habit:
// name,last_completed_epoch_seconds,year,history_bitstring
const rowFields = 4

// ErrParseSkip marks a stored row that could not be decoded. Loading skips
// such rows.
var ErrParseSkip = errors.New("store: malformed row")

// EncodeRow renders h as one stored row, without a trailing newline.
func EncodeRow(h *habit.Habit) string {
	var last int64
	if !h.LastDone.IsZero() {
		last = h.LastDone.Unix()
	}
	bits := make([]byte, calendar.MaxDaysInYear)
	for i, done := range h.History {
		if done {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	name := strings.ReplaceAll(h.Name, ",", "")
	return fmt.Sprintf("%s,%d,%d,%s", name, last, h.Year, bits)
}

// DecodeRow parses one stored row. Count is rebuilt from the history since
// the row does not carry it.
func DecodeRow(line string) (*habit.Habit, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, ",")
	if len(parts) != rowFields {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrParseSkip, rowFields, len(parts))
	}
	name, err := habit.CleanName(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseSkip, err)
	}
	last, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: last completed: %v", ErrParseSkip, err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: year: %v", ErrParseSkip, err)
	}
	bits := strings.TrimSpace(parts[3])
	if len(bits) != calendar.MaxDaysInYear {
		return nil, fmt.Errorf("%w: history has %d days, want %d", ErrParseSkip, len(bits), calendar.MaxDaysInYear)
	}

	h := &habit.Habit{Name: name, Year: year}
	if last != 0 {
		h.LastDone = time.Unix(last, 0)
	}
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			h.History[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("%w: history byte %q at %d", ErrParseSkip, bits[i], i)
		}
	}
	h.Count = h.Total()
	return h, nil
}
