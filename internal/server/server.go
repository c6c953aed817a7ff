package server

import (
	"encoding/json"
	"net/http"

	"github.com/pash62/foot4ever2/internal/config"
	"github.com/pash62/foot4ever2/internal/tgbot"
	"github.com/pash62/foot4ever2/internal/util"
)

// ExportTokenMessage is what the export token signs; the matching link is
// BasePublicURL + "/export/lineup.csv?token=" + HMAC(secret, message).
const ExportTokenMessage = "export:lineup"

func New(cfg config.Config, bot *tgbot.App) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"ts": util.NowISO(),
		})
	})

	// CSV export (admin-only link with token = HMAC)
	mux.HandleFunc("/export/lineup.csv", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "token required", http.StatusBadRequest)
			return
		}
		expected := util.HMACSHA256Hex(cfg.ExportSecret, ExportTokenMessage)
		if token != expected {
			http.Error(w, "invalid token", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="lineup.csv"`)
		_, _ = w.Write([]byte(bot.BuildLineupCSV()))
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}
