package tally

import (
	"context"
	"time"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/internal/service/dialogue"
	"github.com/sandevgo/tallybot/internal/service/extract"
	"github.com/sandevgo/tallybot/internal/service/report"
	"github.com/sandevgo/tallybot/internal/service/window"
	"github.com/sandevgo/tallybot/pkg/log"
)

type Service struct {
	store     core.AmountRepository
	resolver  *window.Resolver
	dialogues *dialogue.Manager
	formatter *report.Formatter

	// Now is the clock used to resolve preset windows.
	Now func() time.Time
}

func NewService(
	store core.AmountRepository,
	resolver *window.Resolver,
	dialogues *dialogue.Manager,
	formatter *report.Formatter,
) *Service {
	return &Service{
		store:     store,
		resolver:  resolver,
		dialogues: dialogues,
		formatter: formatter,
		Now:       time.Now,
	}
}

// OnTextMessage records any amounts in text and, when a range dialogue is in
// progress for the conversation, advances it.
func (s *Service) OnTextMessage(ctx context.Context, id core.ConversationID, text string, ts time.Time) []core.Response {
	s.record(ctx, id, text, ts)

	out, consumed := s.dialogues.Handle(id, text)
	if !consumed {
		return nil
	}
	return []core.Response{s.afterStep(ctx, id, out)}
}

func (s *Service) OnMenuSelection(ctx context.Context, id core.ConversationID, token core.Selector) core.Response {
	logger := log.FromCtx(ctx)

	switch token {
	case core.SelectorCustom:
		return s.prompt(s.dialogues.Begin(id, dialogue.ModeGuided))
	case core.SelectorRange:
		return s.prompt(s.dialogues.Begin(id, dialogue.ModeCombined))
	}

	w, err := s.resolver.Resolve(token, s.Now())
	if err != nil {
		logger.Warn().Err(err).Int64("chat_id", id).Msg("menu selection rejected")
		return core.Response{Text: msgUnknownSelector}
	}

	logger.Info().Int64("chat_id", id).Str("selector", string(token)).Msg("resolving preset window")
	return s.report(ctx, id, w)
}

// SumRange answers a one-line "A to B" range without starting a dialogue.
func (s *Service) SumRange(ctx context.Context, id core.ConversationID, line string) core.Response {
	start, end, err := dialogue.ParseRange(line, s.resolver.Location())
	if err != nil {
		return core.Response{Text: validationMessage(err)}
	}
	return s.report(ctx, id, s.resolver.Explicit(start, end, window.LabelCustom))
}

// Cancel abandons the conversation's dialogue, if any.
func (s *Service) Cancel(ctx context.Context, id core.ConversationID) core.Response {
	if !s.dialogues.Cancel(id) {
		return core.Response{Text: msgNothingActive}
	}
	log.FromCtx(ctx).Info().Int64("chat_id", id).Msg("range dialogue cancelled")
	return core.Response{Text: msgCancelled}
}

func (s *Service) Menu() core.Response {
	opts := make([]core.MenuOption, len(menuOptions))
	copy(opts, menuOptions)
	return core.Response{Text: msgMenu, Menu: opts}
}

func (s *Service) record(ctx context.Context, id core.ConversationID, text string, ts time.Time) {
	amounts := extract.Extract(text)
	if len(amounts) == 0 {
		return
	}
	s.store.Append(ctx, id, core.AmountRecord{
		Timestamp: ts,
		Amounts:   amounts,
		RawText:   text,
	})
}

func (s *Service) afterStep(ctx context.Context, id core.ConversationID, out dialogue.Outcome) core.Response {
	logger := log.FromCtx(ctx)

	if out.Err != nil {
		logger.Debug().Err(out.Err).Int64("chat_id", id).Stringer("stage", out.Stage).Msg("dialogue input rejected")
		return core.Response{Text: validationMessage(out.Err)}
	}

	if out.Window != nil {
		w := s.resolver.Explicit(out.Window.Start, out.Window.End, out.Window.Label)
		logger.Info().Int64("chat_id", id).Time("start", w.Start).Time("end", w.End).Msg("custom range completed")
		return s.report(ctx, id, w)
	}

	return s.prompt(out.Stage)
}

func (s *Service) report(ctx context.Context, id core.ConversationID, w core.TimeWindow) core.Response {
	count, sum := s.store.Query(ctx, id, w)
	return s.formatter.Format(w, count, sum)
}

func (s *Service) prompt(stage dialogue.Stage) core.Response {
	today := s.Now().In(s.resolver.Location())

	switch stage {
	case dialogue.StageAwaitStartDate:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return core.Response{
			Text:        msgAskStartDate,
			Suggestions: [][]string{{firstOfMonth.Format(dialogue.DateLayout), today.Format(dialogue.DateLayout)}},
		}
	case dialogue.StageAwaitStartTime:
		return core.Response{Text: msgAskStartTime, Suggestions: clockSuggestions}
	case dialogue.StageAwaitEndDate:
		return core.Response{
			Text:        msgAskEndDate,
			Suggestions: [][]string{{today.Format(dialogue.DateLayout)}},
		}
	case dialogue.StageAwaitEndTime:
		return core.Response{Text: msgAskEndTime, Suggestions: clockSuggestions}
	case dialogue.StageAwaitCombinedRange:
		return core.Response{Text: msgAskRange}
	default:
		return core.Response{Text: msgInvalidInput}
	}
}

var _ core.Tally = (*Service)(nil)

