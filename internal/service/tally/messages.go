package tally

import (
	"errors"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/internal/service/dialogue"
)

const (
	msgMenu            = "📅ជ្រើសរើសចន្លោះកាលបរិច្ឆេទសម្រាប់ការគណនាផលបូក:"
	msgUnknownSelector = "❌ ជម្រើសមិនត្រឹមត្រូវ។"

	msgAskStartDate = "📅 សូមផ្ញើថ្ងៃចាប់ផ្តើមជាទម្រង់:\nឆ្នាំ-ខែ-ថ្ងៃ\nឧទាហរណ៍: 2025-07-01"
	msgAskStartTime = "⏰ ឥឡូវសូមផ្ញើម៉ោងចាប់ផ្តើម (HH:MM):\nឧទាហរណ៍: 08:30"
	msgAskEndDate   = "📅 សូមផ្ញើថ្ងៃបញ្ចប់ជាទម្រង់:\nឆ្នាំ-ខែ-ថ្ងៃ\nឧទាហរណ៍: 2025-07-31"
	msgAskEndTime   = "⏰ ឥឡូវសូមផ្ញើម៉ោងបញ្ចប់ (HH:MM):\nឧទាហរណ៍: 17:30"
	msgAskRange     = "📅 សូមផ្ញើចន្លោះពេលក្នុងមួយបន្ទាត់:\nឆ្នាំ-ខែ-ថ្ងៃ HH:MM to ឆ្នាំ-ខែ-ថ្ងៃ HH:MM\nឧទាហរណ៍: 2025-07-01 00:00 to 2025-07-31 23:59"

	msgInvalidDate      = "❌ ទម្រង់ថ្ងៃមិនត្រឹមត្រូវ។ សូមបញ្ចូលជា ឆ្នាំ-ខែ-ថ្ងៃ (ឧទាហរណ៍: 2025-07-15)"
	msgInvalidTime      = "❌ ទម្រង់ម៉ោងមិនត្រឹមត្រូវ។ សូមបញ្ចូលជា HH:MM (ឧទាហរណ៍: 14:30)"
	msgMissingSeparator = "❌ រកមិនឃើញពាក្យ \"to\" រវាងពេលចាប់ផ្តើម និងពេលបញ្ចប់។ ឧទាហរណ៍: 2025-07-01 00:00 to 2025-07-31 23:59"
	msgInvalidStamp     = "❌ ទម្រង់ថ្ងៃ និងម៉ោងមិនត្រឹមត្រូវ។ សូមបញ្ចូលជា ឆ្នាំ-ខែ-ថ្ងៃ HH:MM (ឧទាហរណ៍: 2025-07-01 08:00)"
	msgInvalidInput     = "❌ ទម្រង់មិនត្រឹមត្រូវ។ សូមព្យាយាមម្តងទៀត។"

	msgCancelled     = "✅ បានបោះបង់ការជ្រើសរើសពេលវេលា។"
	msgNothingActive = "ℹ️ មិនមានការជ្រើសរើសពេលវេលាកំពុងដំណើរការទេ។"
)

var menuOptions = []core.MenuOption{
	{Label: "ថ្ងៃនេះ 6:00AM-1:30PM", Token: core.SelectorTodayMorning},
	{Label: "ថ្ងៃនេះ 1:30PM-9:00PM", Token: core.SelectorTodayEvening},
	{Label: "សប្តាហ៍នេះ", Token: core.SelectorWeek},
	{Label: "ខែនេះ", Token: core.SelectorMonth},
	{Label: "ជ្រើសរើសពេលវេលាខ្លួនឯង", Token: core.SelectorCustom},
	{Label: "បញ្ចូលចន្លោះក្នុងមួយបន្ទាត់", Token: core.SelectorRange},
}

var clockSuggestions = [][]string{
	{"06:00", "12:00"},
	{"13:30", "18:00"},
	{"00:00", "23:59"},
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, dialogue.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, dialogue.ErrInvalidTime):
		return msgInvalidTime
	case errors.Is(err, dialogue.ErrMissingSeparator):
		return msgMissingSeparator
	case errors.Is(err, dialogue.ErrInvalidStamp):
		return msgInvalidStamp
	default:
		return msgInvalidInput
	}
}
