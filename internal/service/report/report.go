package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/internal/service/extract"
	"github.com/shopspring/decimal"
)

const boundLayout = "2006-01-02 15:04"

// Formatter renders aggregation results as Markdown.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	return &Formatter{loc: loc}
}

func (f *Formatter) Format(w core.TimeWindow, count int, sum decimal.Decimal) core.Response {
	start, end := f.Bound(w.Start), f.Bound(w.End)

	if count == 0 {
		return core.Response{
			Text: fmt.Sprintf("🔍 រកមិនឃើញតម្លៃលេខរវាង %s (%s to %s)", w.Label, start, end),
		}
	}

	return core.Response{
		Text: f.Combine(
			f.Title("📊", w.Label),
			f.Item("រយៈពេល", start+" to "+end),
			f.Item("សារត្រូវបានយកមកបូក", fmt.Sprintf("%d", count)),
			f.Item("ផលបូកសរុប", extract.FormatAmount(sum)),
		),
		Structured: true,
	}
}

// Bound renders an instant as wall-clock time in the formatter's zone.
func (f *Formatter) Bound(t time.Time) string {
	return t.In(f.loc).Format(boundLayout)
}

func (f *Formatter) Title(emoji, title string) string {
	return fmt.Sprintf("%s **%s**", emoji, title)
}

func (f *Formatter) Item(label, value string) string {
	return fmt.Sprintf("• %s: %s", label, value)
}

func (f *Formatter) Combine(lines ...string) string {
	return strings.Join(lines, "\n")
}
