package tgbot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pash62/foot4ever2/internal/config"
	"github.com/pash62/foot4ever2/internal/draft"
	"github.com/pash62/foot4ever2/internal/roster"
	"github.com/pash62/foot4ever2/internal/schedule"
	"github.com/pash62/foot4ever2/internal/storage"
)

// App is the Telegram session manager: it owns the roster, the next match
// and the single draft manager, and routes every inbound update. Updates are
// handled one at a time, which is what serializes access to all of that
// state.
type App struct {
	cfg    config.Config
	bot    *tgbotapi.BotAPI
	store  storage.Store
	logger *slog.Logger

	roster  *roster.Roster
	match   *schedule.Match // nil until an admin sets the program
	drafts  *draft.Manager
	ratings storage.RatingsRecord

	// stored registration entries (ids or guest names) not yet resolved
	// against the chat member list; see loadUsers.
	pendingPlayers []string
	usersLoaded    bool
}

func New(cfg config.Config, store storage.Store, logger *slog.Logger) (*App, error) {
	b, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	b.Debug = false

	a := &App{
		cfg:    cfg,
		bot:    b,
		store:  store,
		logger: logger,
		roster: roster.New(),
		drafts: draft.NewManager(),
	}
	if err := a.loadState(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

// loadState pulls ratings and the saved match from storage. Player entities
// themselves come from Telegram later; ids found in the match record are
// kept aside until then.
func (a *App) loadState(ctx context.Context) error {
	rates, err := a.store.LoadRatings(ctx)
	if err != nil {
		return err
	}
	if rates != nil {
		a.ratings = *rates
	}

	rec, err := a.store.LoadMatch(ctx)
	if err != nil {
		return err
	}
	if rec != nil {
		m, err := schedule.Parse(rec.Date, rec.VenueIndex)
		if err != nil {
			a.logger.Warn("ignoring saved match", slog.String("error", err.Error()))
		} else {
			a.match = &m
			a.pendingPlayers = rec.Players
		}
	}
	return nil
}

// loadUsers resolves the full roster once, from the group's administrator
// list, and replays the saved registrations over it. Guests in the saved
// list are recreated by name.
func (a *App) loadUsers() {
	if a.usersLoaded {
		return
	}
	a.usersLoaded = true

	admins, err := a.bot.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: a.cfg.FootChatID},
	})
	if err != nil {
		a.logger.Warn("chat administrators", slog.String("error", err.Error()))
	}
	for _, member := range admins {
		u := member.User
		if u == nil || a.roster.ByID(u.ID) != nil {
			continue
		}
		p := roster.NewPlayer(u.ID, u.FirstName, u.LastName, a.ratesFor(u.ID, u.FirstName, u.LastName))
		p.Admin = a.cfg.AdminTGIDs[u.ID]
		a.roster.Add(p)
	}

	for _, entry := range a.pendingPlayers {
		var p *roster.Player
		if id, err := strconv.ParseInt(entry, 10, 64); err == nil && id != 0 {
			p = a.roster.ByID(id)
		} else {
			p = a.roster.AddGuest(entry, a.ratesFor(0, entry, ""))
		}
		if p != nil {
			a.roster.Register(p)
		}
	}
	a.pendingPlayers = nil
}

// ratesFor looks the player up in the ratings record, by id first, then by
// normalized display name. Nil when unrated.
func (a *App) ratesFor(id int64, firstName, lastName string) *roster.Ratings {
	if id != 0 {
		if rates, ok := a.ratings.ByID[strconv.FormatInt(id, 10)]; ok {
			r := roster.Ratings(rates)
			return &r
		}
	}
	name := strings.ToLower(roster.MakeDisplayName(firstName, lastName))
	if rates, ok := a.ratings.ByName[name]; ok {
		r := roster.Ratings(rates)
		return &r
	}
	return nil
}

// playerFromUser finds or lazily creates the roster entry for a Telegram
// user who talked to the bot.
func (a *App) playerFromUser(u *tgbotapi.User) *roster.Player {
	if p := a.roster.ByID(u.ID); p != nil {
		return p
	}
	p := roster.NewPlayer(u.ID, u.FirstName, u.LastName, a.ratesFor(u.ID, u.FirstName, u.LastName))
	p.Admin = a.cfg.AdminTGIDs[u.ID]
	a.roster.Add(p)
	return p
}

// saveMatch persists the current match and registrations. Nothing to save
// until an admin has set a program.
func (a *App) saveMatch(ctx context.Context) {
	if a.match == nil {
		return
	}
	rec := storage.MatchRecord{
		Date:       a.match.Date.Format(schedule.DateLayout),
		VenueIndex: a.match.VenueIndex,
	}
	for _, p := range a.roster.Lineup() {
		if p.ID != 0 {
			rec.Players = append(rec.Players, strconv.FormatInt(p.ID, 10))
		} else {
			rec.Players = append(rec.Players, p.DisplayName)
		}
	}
	if err := a.store.SaveMatch(ctx, rec); err != nil {
		a.logger.Error("save match", slog.String("error", err.Error()))
	}
}

func (a *App) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				if err := a.handleMessage(ctx, upd.Message); err != nil {
					a.logger.Error("handle msg", slog.String("error", err.Error()))
				}
			} else if upd.CallbackQuery != nil {
				if err := a.handleCallback(ctx, upd.CallbackQuery); err != nil {
					a.logger.Error("handle cb", slog.String("error", err.Error()))
				}
			}
		}
	}
}

func (a *App) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := a.bot.Send(msg)
	return err
}

func (a *App) sendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := a.bot.Send(msg)
	return err
}

func (a *App) isAdmin(p *roster.Player) bool {
	return p.Admin || a.cfg.AdminTGIDs[p.ID]
}

func (a *App) now() time.Time {
	return time.Now()
}
