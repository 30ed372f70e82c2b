package schedule

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pickup/internal/core/domain/model/kernel"
)

// RestDay is the weekday without pickups.
const RestDay = time.Sunday

// BlockList is a set of dates that cannot be booked.
type BlockList struct {
	dates map[kernel.Date]struct{}
}

// NewBlockList builds a block list from dates.
func NewBlockList(dates ...kernel.Date) BlockList {
	b := BlockList{dates: make(map[kernel.Date]struct{}, len(dates))}
	for _, d := range dates {
		if !d.IsZero() {
			b.dates[d] = struct{}{}
		}
	}
	return b
}

// ParseBlockList reads ISO dates, ignoring blank entries. Every malformed
// entry is reported.
func ParseBlockList(values []string) (BlockList, error) {
	dates := make([]kernel.Date, 0, len(values))
	var errList []error
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		d, err := kernel.ParseDate(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("block list entry %q: %w", v, err))
			continue
		}
		dates = append(dates, d)
	}
	if err := errors.Join(errList...); err != nil {
		return BlockList{}, err
	}
	return NewBlockList(dates...), nil
}

// Contains reports whether d is listed.
func (b BlockList) Contains(d kernel.Date) bool {
	_, ok := b.dates[d]
	return ok
}

// Dates returns the listed dates in ascending order.
func (b BlockList) Dates() []kernel.Date {
	out := make([]kernel.Date, 0, len(b.dates))
	for d := range b.dates {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, c kernel.Date) int {
		switch {
		case a.Before(c):
			return -1
		case a.After(c):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Availability answers whether a date can be booked, relative to a fixed today.
type Availability struct {
	today     kernel.Date
	blockList BlockList
}

// NewAvailability pins the rules to today. It never reads the clock itself.
func NewAvailability(today kernel.Date, blockList BlockList) Availability {
	return Availability{today: today, blockList: blockList}
}

func (a Availability) Today() kernel.Date {
	return a.today
}

func (a Availability) BlockList() BlockList {
	return a.blockList
}

// IsBlocked reports whether d cannot be booked: it is today or earlier, a
// Sunday, or on the block list. The zero date is always blocked.
func (a Availability) IsBlocked(d kernel.Date) bool {
	if d.IsZero() || !d.After(a.today) {
		return true
	}
	if d.Weekday() == RestDay {
		return true
	}
	return a.blockList.Contains(d)
}
