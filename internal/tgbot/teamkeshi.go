package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pash62/foot4ever2/internal/draft"
	"github.com/pash62/foot4ever2/internal/roster"
)

// cmdArrange starts a TeamKeshi: the invoker becomes the first captain and
// the bot asks for the second one. Drafting happens outside the main group,
// in a chat the two captains share with the bot.
func (a *App) cmdArrange(m *tgbotapi.Message) error {
	a.loadUsers()

	if m.Chat.ID == a.cfg.FootChatID {
		return a.SendText(m.Chat.ID, msgWrongChatTeamKeshi)
	}
	if a.drafts.Running() {
		return a.SendText(m.Chat.ID, msgTeamKeshiIsRunning)
	}

	s, err := a.drafts.Start(a.roster.Candidates())
	if err != nil {
		return a.SendText(m.Chat.ID, msgTeamKeshiIsRunning)
	}
	captain := a.playerFromUser(m.From)
	if err := s.AddCaptain(captain); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(m.Chat.ID, fmt.Sprintf("%s, %s", captain.DisplayName, msgTeamKeshiWelcome))
	msg.ReplyMarkup = captainConfirmKeyboard()
	_, err = a.bot.Send(msg)
	return err
}

func (a *App) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	// ack so the client stops its spinner
	cb := tgbotapi.NewCallback(q.ID, "")
	if _, err := a.bot.Request(cb); err != nil {
		a.logger.Warn("callback ack", "error", err)
	}

	data := q.Data
	switch {
	case strings.HasPrefix(data, "susp:"):
		return a.onSuspensionButton(q)
	case strings.HasPrefix(data, "tk:"):
		return a.onDraftButton(ctx, q)
	}
	return nil
}

func (a *App) onSuspensionButton(q *tgbotapi.CallbackQuery) error {
	msg := q.Message
	if q.Data == cbSuspCancel {
		return a.editText(msg, msgOperationCancelled)
	}

	if name, ok := strings.CutPrefix(q.Data, cbSuspAdd); ok {
		if p := a.roster.ByName(name); p != nil {
			p.Suspended = true
			a.roster.Unregister(p)
		}
		if err := a.editText(msg, a.suspendedListText()); err != nil {
			return err
		}
		return a.sendHTML(msg.Chat.ID, a.programAndPlayers())
	}

	if name, ok := strings.CutPrefix(q.Data, cbSuspDel); ok {
		if p := a.roster.ByName(name); p != nil {
			p.Suspended = false
		}
		return a.editText(msg, a.suspendedListText())
	}
	return nil
}

func (a *App) suspendedListText() string {
	suspended := a.roster.Suspended()
	if len(suspended) == 0 {
		return msgNoSuspendedPlayer
	}
	names := make([]string, 0, len(suspended))
	for _, p := range suspended {
		names = append(names, p.DisplayName)
	}
	return fmt.Sprintf("%s\n%s", msgSuspendedPlayers, strings.Join(names, ", "))
}

func (a *App) onDraftButton(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	s := a.drafts.Session()
	if s == nil {
		return a.editText(q.Message, msgOperationCancelled)
	}
	actor := a.playerFromUser(q.From)

	switch {
	case q.Data == cbDraftNo || q.Data == cbDraftCancel:
		a.drafts.Cancel()
		return a.editText(q.Message, msgOperationCancelled)

	case q.Data == cbDraftYes:
		if s.IsComplete() {
			return a.onDraftValidate(q, s, actor)
		}
		return a.onSecondCaptain(q, s, actor)

	default:
		name, ok := strings.CutPrefix(q.Data, cbDraftPick)
		if !ok {
			return nil
		}
		return a.onDraftPick(q, s, actor, name)
	}
}

// onSecondCaptain handles the welcome keyboard's yes: anyone but the first
// captain becomes captain two and picking starts.
func (a *App) onSecondCaptain(q *tgbotapi.CallbackQuery, s *draft.Session, actor *roster.Player) error {
	if actor == s.Captain(0) {
		txt := fmt.Sprintf("%s %s\n%s, %s", actor.DisplayName, msgNotSecondCaptain, actor.DisplayName, msgTeamKeshiWelcome)
		return a.SendText(q.Message.Chat.ID, txt)
	}
	if err := s.AddCaptain(actor); err != nil {
		return a.SendText(q.Message.Chat.ID, err.Error())
	}
	return a.refreshDraft(q.Message, s)
}

func (a *App) onDraftPick(q *tgbotapi.CallbackQuery, s *draft.Session, actor *roster.Player, name string) error {
	target := a.roster.ByName(name)
	if target == nil {
		return nil
	}
	err := s.Pick(actor, target)
	switch {
	case errors.Is(err, draft.ErrNotYourTurn):
		return a.remindTurn(q.Message.Chat.ID, s)
	case errors.Is(err, draft.ErrAlreadyPicked), errors.Is(err, draft.ErrNotDrafting):
		// stale button press, just repaint
	case err != nil:
		return err
	}
	return a.refreshDraft(q.Message, s)
}

func (a *App) onDraftValidate(q *tgbotapi.CallbackQuery, s *draft.Session, actor *roster.Player) error {
	done, err := s.Validate(actor)
	if errors.Is(err, draft.ErrNotYourTurn) {
		return a.remindTurn(q.Message.Chat.ID, s)
	}
	if err != nil {
		return err
	}
	if !done {
		return a.refreshDraft(q.Message, s)
	}

	finalTeams := draft.TeamsText(s, true, false)
	capA, capB := s.Captain(0).DisplayName, s.Captain(1).DisplayName
	a.drafts.Cancel()

	if err := a.editText(q.Message, fmt.Sprintf("%s\n%s", msgValidationFinish, finalTeams)); err != nil {
		return err
	}
	if err := a.SendText(a.cfg.AdminChatID, fmt.Sprintf(msgValidationFinish2, capA, capB)); err != nil {
		return err
	}
	announcement := finalTeams
	if a.match != nil {
		announcement = fmt.Sprintf("%s\n%s", a.match.ProgramText(), finalTeams)
	}
	return a.sendHTML(a.cfg.AdminChatID, announcement)
}

func (a *App) remindTurn(chatID int64, s *draft.Session) error {
	turn := s.WhoseTurn()
	if turn == nil {
		return nil
	}
	return a.SendText(chatID, fmt.Sprintf(msgNotYourTurn, turn.DisplayName))
}

// refreshDraft repaints the draft message: status text plus the keyboard for
// the current situation.
func (a *App) refreshDraft(msg *tgbotapi.Message, s *draft.Session) error {
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, msg.MessageID, draft.StatusText(s))
	kb := draftKeyboard(draft.Options(s))
	edit.ReplyMarkup = &kb
	_, err := a.bot.Send(edit)
	return err
}

func (a *App) editText(msg *tgbotapi.Message, text string) error {
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, msg.MessageID, text)
	_, err := a.bot.Send(edit)
	return err
}
