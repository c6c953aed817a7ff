package tgbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pash62/foot4ever2/internal/roster"
	"github.com/pash62/foot4ever2/internal/schedule"
)

func (a *App) handleMessage(ctx context.Context, m *tgbotapi.Message) error {
	if !m.IsCommand() {
		return nil
	}
	switch m.Command() {
	case "start":
		return a.SendText(m.Chat.ID, msgWelcome)
	case "add":
		return a.cmdAdd(ctx, m)
	case "del":
		return a.cmdDel(ctx, m)
	case "prog":
		return a.cmdProg(m)
	case "players":
		return a.cmdPlayers(m)
	case "all":
		return a.cmdAll(m)
	case "next":
		return a.cmdNext(m)
	case "add_susp":
		return a.cmdSuspKeyboard(m, true)
	case "del_susp":
		return a.cmdSuspKeyboard(m, false)
	case "arrange":
		return a.cmdArrange(m)
	case "set_prog":
		return a.cmdSetProg(ctx, m)
	case "help":
		return a.sendHelp(m.Chat.ID, publicCmds)
	case "help_admins":
		return a.sendHelp(m.Chat.ID, adminCmds)
	}
	return nil
}

func (a *App) sendHelp(chatID int64, cmds []command) error {
	var b strings.Builder
	for _, c := range cmds {
		fmt.Fprintf(&b, "%s: /%s\n", c.Desc, c.Name)
	}
	return a.SendText(chatID, b.String())
}

// requireAdmin replies with the refusal message when the sender is not an
// admin.
func (a *App) requireAdmin(m *tgbotapi.Message) (*roster.Player, bool, error) {
	p := a.playerFromUser(m.From)
	if !a.isAdmin(p) {
		return nil, false, a.SendText(m.Chat.ID, msgMissingPermission)
	}
	return p, true, nil
}

func (a *App) signupOpen() bool {
	return a.match != nil && a.match.SignupOpen(a.now())
}

func (a *App) cmdAdd(ctx context.Context, m *tgbotapi.Message) error {
	a.loadUsers()
	user := a.playerFromUser(m.From)

	if user.DisplayName == roster.DefaultName {
		return a.SendText(m.Chat.ID, msgSignupNotAuthorized)
	}
	if !a.signupOpen() {
		return a.SendText(m.Chat.ID, msgSignupNotStarted)
	}
	if !a.isAdmin(user) && m.Chat.ID != a.cfg.FootChatID {
		return a.SendText(m.Chat.ID, msgWrongChatAddDel)
	}

	if args := strings.TrimSpace(m.CommandArguments()); args != "" {
		return a.forcedAddDel(ctx, m, args, true)
	}

	if user.Suspended {
		return a.SendText(m.Chat.ID, fmt.Sprintf("%s, %s", user.DisplayName, msgYouAreSuspended))
	}
	if !user.Registered() {
		a.roster.Register(user)
		a.saveMatch(ctx)
		return a.sendHTML(m.Chat.ID, a.programAndPlayers())
	}
	return nil
}

func (a *App) cmdDel(ctx context.Context, m *tgbotapi.Message) error {
	a.loadUsers()
	user := a.playerFromUser(m.From)

	if !a.signupOpen() {
		return a.SendText(m.Chat.ID, msgSignupNotStarted)
	}
	if !a.isAdmin(user) && m.Chat.ID != a.cfg.FootChatID {
		return a.SendText(m.Chat.ID, msgWrongChatAddDel)
	}

	if args := strings.TrimSpace(m.CommandArguments()); args != "" {
		return a.forcedAddDel(ctx, m, args, false)
	}

	if !a.isAdmin(user) && !a.match.CanUnregister(a.now()) {
		if err := a.SendText(a.cfg.AdminChatID, fmt.Sprintf("%s %s", user.DisplayName, msgTryToDel)); err != nil {
			a.logger.Warn("notify admins", "error", err)
		}
		return a.SendText(m.Chat.ID, msgTooLateDel)
	}

	if user.Registered() {
		a.roster.Unregister(user)
		a.saveMatch(ctx)
		return a.sendHTML(m.Chat.ID, a.programAndPlayers())
	}
	return nil
}

// forcedAddDel lets admins sign comma-separated players up (or out) by
// name, creating guest entries as needed.
func (a *App) forcedAddDel(ctx context.Context, m *tgbotapi.Message, args string, register bool) error {
	if _, ok, err := a.requireAdmin(m); !ok {
		return err
	}
	for _, name := range strings.Split(args, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p := a.roster.AddGuest(name, a.ratesFor(0, name, ""))
		if register {
			a.roster.Register(p)
		} else {
			a.roster.Unregister(p)
		}
	}
	a.saveMatch(ctx)
	return a.sendHTML(m.Chat.ID, a.programAndPlayers())
}

func (a *App) cmdProg(m *tgbotapi.Message) error {
	if !a.signupOpen() {
		return a.SendText(m.Chat.ID, msgSignupNotStarted)
	}
	if err := a.sendHTML(m.Chat.ID, fmt.Sprintf("%s\n%s", msgNextWeekProg, a.match.ProgramText())); err != nil {
		return err
	}
	v := a.match.Venue()
	loc := tgbotapi.NewLocation(m.Chat.ID, v.Lat, v.Lon)
	_, err := a.bot.Send(loc)
	return err
}

func (a *App) cmdPlayers(m *tgbotapi.Message) error {
	a.loadUsers()
	return a.sendHTML(m.Chat.ID, a.programAndPlayers())
}

// programAndPlayers renders the program header followed by the numbered
// lineup, reserves restarting at 1 after the first ten.
func (a *App) programAndPlayers() string {
	var b strings.Builder
	if a.match != nil {
		b.WriteString(a.match.ProgramText())
	}
	b.WriteString("\n")
	for i, p := range a.roster.Lineup() {
		if i == roster.SquadPairSize {
			fmt.Fprintf(&b, "\n%s:\n", msgReserve)
		}
		num := i + 1
		if i >= roster.SquadPairSize {
			num = i + 1 - roster.SquadPairSize
		}
		fmt.Fprintf(&b, "%d. %s\n", num, p.DisplayName)
	}
	return b.String()
}

func (a *App) cmdAll(m *tgbotapi.Message) error {
	a.loadUsers()
	names := []string{}
	for _, p := range a.roster.All() {
		names = append(names, p.DisplayName)
	}
	return a.SendText(m.Chat.ID, strings.Join(names, "\n"))
}

func (a *App) cmdNext(m *tgbotapi.Message) error {
	if _, ok, err := a.requireAdmin(m); !ok {
		return err
	}
	day, date := schedule.NextPotentialDate(a.now())
	return a.SendText(m.Chat.ID, fmt.Sprintf(msgNextPotentialDate, day, date))
}

func (a *App) cmdSuspKeyboard(m *tgbotapi.Message, suspend bool) error {
	if _, ok, err := a.requireAdmin(m); !ok {
		return err
	}
	a.loadUsers()

	var players []*roster.Player
	prefix := cbSuspDel
	text := msgSelectUnsuspended
	if suspend {
		players = a.roster.NotSuspended()
		prefix = cbSuspAdd
		text = msgSelectSuspended
	} else {
		players = a.roster.Suspended()
		if len(players) == 0 {
			return a.SendText(m.Chat.ID, msgNoSuspendedPlayer)
		}
	}

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.DisplayName)
	}
	msg := tgbotapi.NewMessage(m.Chat.ID, text)
	msg.ReplyMarkup = nameKeyboard(names, prefix, cbSuspCancel)
	_, err := a.bot.Send(msg)
	return err
}

func (a *App) cmdSetProg(ctx context.Context, m *tgbotapi.Message) error {
	if _, ok, err := a.requireAdmin(m); !ok {
		return err
	}
	a.loadUsers()

	parts := strings.SplitN(m.CommandArguments(), ",", 2)
	if len(parts) != 2 {
		return a.SendText(m.Chat.ID, msgBadSetProg)
	}
	venueIndex, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return a.SendText(m.Chat.ID, msgBadSetProg)
	}
	match, err := schedule.Parse(strings.TrimSpace(parts[0]), venueIndex)
	if err != nil {
		return a.SendText(m.Chat.ID, msgBadSetProg)
	}

	a.match = &match
	a.drafts.Cancel()

	// new week: only the admins start signed up
	a.roster.ClearRegistrations()
	for _, p := range a.roster.All() {
		if a.isAdmin(p) {
			a.roster.Register(p)
		}
	}
	a.saveMatch(ctx)

	if err := a.SendText(m.Chat.ID, msgSetProgSucceed); err != nil {
		return err
	}
	return a.cmdProg(m)
}
