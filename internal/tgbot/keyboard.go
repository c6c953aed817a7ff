package tgbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pash62/foot4ever2/internal/draft"
)

// Callback data prefixes. Draft buttons carry the target's display name.
const (
	cbDraftYes    = "tk:yes"
	cbDraftNo     = "tk:no"
	cbDraftCancel = "tk:cancel"
	cbDraftPick   = "tk:pick:"

	cbSuspAdd    = "susp:add:"
	cbSuspDel    = "susp:del:"
	cbSuspCancel = "susp:cancel"
)

// draftKeyboard maps the renderer's options onto inline buttons, one per
// row, validation buttons side by side.
func draftKeyboard(opts []draft.Option) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	validation := []tgbotapi.InlineKeyboardButton{}
	for _, opt := range opts {
		switch opt.Value {
		case draft.OptionConfirm:
			validation = append(validation, tgbotapi.NewInlineKeyboardButtonData(opt.Label, cbDraftYes))
		case draft.OptionDecline:
			validation = append(validation, tgbotapi.NewInlineKeyboardButtonData(opt.Label, cbDraftNo))
		case draft.OptionCancel:
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(opt.Label, cbDraftCancel),
			))
		default:
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(opt.Label, cbDraftPick+opt.Value),
			))
		}
	}
	if len(validation) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(validation...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// captainConfirmKeyboard is shown right after /arrange, asking the second
// captain to join.
func captainConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Oui", cbDraftYes),
			tgbotapi.NewInlineKeyboardButtonData("Non", cbDraftNo),
		),
	)
}

// nameKeyboard lists player names, one per row, plus a cancel button. prefix
// is the callback namespace, cancelData its cancel action.
func nameKeyboard(names []string, prefix, cancelData string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for _, name := range names {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, prefix+name),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Annuler", cancelData),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
