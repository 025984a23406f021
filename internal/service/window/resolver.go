package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/tallybot/internal/core"
)

// Zone is the fixed UTC+7 zone every window is computed in, independent of the host's zone.
var Zone = time.FixedZone("UTC+7", 7*60*60)

var (
	ErrUnknownSelector = errors.New("unknown selector")
	// ErrInteractive is returned for selectors whose bounds are collected from the user.
	ErrInteractive = errors.New("selector needs user input")
)

const (
	LabelTodayMorning = "ព្រឹកថ្ងៃនេះ (6:00AM-1:30PM)"
	LabelTodayEvening = "ល្ងាចថ្ងៃនេះ (1:30PM-9:00PM)"
	LabelWeek         = "សប្តាហ៍នេះ"
	LabelMonth        = "ខែនេះ"
	LabelCustom       = "ចន្លោះកាលបរិច្ឆេទ"
)

// weekSpan is deliberately 6d23h59m, the week ends on Sunday 23:59:00.
const weekSpan = 6*24*time.Hour + 23*time.Hour + 59*time.Minute

type Resolver struct {
	loc *time.Location
}

func NewResolver() *Resolver {
	return &Resolver{loc: Zone}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve computes the concrete window for a preset selector relative to now.
func (r *Resolver) Resolve(sel core.Selector, now time.Time) (core.TimeWindow, error) {
	now = now.In(r.loc)
	y, m, d := now.Date()

	switch sel {
	case core.SelectorTodayMorning:
		return core.TimeWindow{
			Start: r.at(y, m, d, 6, 0),
			End:   r.at(y, m, d, 13, 30),
			Label: LabelTodayMorning,
		}, nil
	case core.SelectorTodayEvening:
		return core.TimeWindow{
			Start: r.at(y, m, d, 13, 30),
			End:   r.at(y, m, d, 21, 0),
			Label: LabelTodayEvening,
		}, nil
	case core.SelectorWeek:
		start := r.at(y, m, d-daysSinceMonday(now.Weekday()), 0, 0)
		return core.TimeWindow{
			Start: start,
			End:   start.Add(weekSpan),
			Label: LabelWeek,
		}, nil
	case core.SelectorMonth:
		return core.TimeWindow{
			Start: r.at(y, m, 1, 0, 0),
			End:   r.at(y, m+1, 1, 0, 0).Add(-time.Second),
			Label: LabelMonth,
		}, nil
	case core.SelectorCustom, core.SelectorRange:
		return core.TimeWindow{}, ErrInteractive
	default:
		return core.TimeWindow{}, fmt.Errorf("%w: %q", ErrUnknownSelector, sel)
	}
}

// Explicit passes user supplied bounds through unchanged.
func (r *Resolver) Explicit(start, end time.Time, label string) core.TimeWindow {
	if label == "" {
		label = LabelCustom
	}
	return core.TimeWindow{Start: start, End: end, Label: label}
}

func (r *Resolver) at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, r.loc)
}

// daysSinceMonday maps time.Weekday (Sunday = 0) onto Monday = 0.
func daysSinceMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
