package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"guildhall/internal/game"
	"guildhall/internal/ops"
	"guildhall/internal/save"
)

// App holds what the handlers depend on.
type App struct {
	Engine *game.Engine
	Store  save.Store

	// SavePath and Backups drive backup rotation; SavePath is empty
	// for the SQLite backend (the database is its own single file).
	SavePath string
	Backups  int
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeReject(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// rejection reports whether err is an expected domain refusal rather
// than a server fault.
func rejection(err error) bool {
	for _, known := range []error{
		game.ErrQuestNotFound, game.ErrQuestNotReady, game.ErrQuestNotAwarded,
		game.ErrBidOutOfRange, game.ErrUnknownStance, game.ErrEmptyParty,
		game.ErrMercNotFound, game.ErrMercBusy, game.ErrCandidateNotFound,
		game.ErrAlreadyHired, game.ErrInsufficientGold,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// persist writes the whole snapshot after a state-mutating command.
// A failed save is logged, not propagated: the in-memory game stays
// authoritative and the next successful save catches up.
func (a *App) persist(r *http.Request) {
	snap := save.Capture(a.Engine.State)
	if err := a.Store.Save(r.Context(), snap); err != nil {
		log.Printf("save failed: %v", err)
	}
}

// RegisterAPIRoutes wires the projection and command endpoints.
func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine

	rr.Handle(mux, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	rr.Handle(mux, "GET /api/state", "Full game state projection", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.View())
	})

	rr.Handle(mux, "GET /api/quests", "Quest board projection", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Quests())
	})

	rr.Handle(mux, "GET /api/mercs", "Roster projection", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Roster())
	})

	rr.Handle(mux, "GET /api/candidates", "Recruit pool projection", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Candidates())
	})

	rr.Handle(mux, "GET /api/journal", "Global event feed", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Feed())
	})

	rr.Handle(mux, "POST /api/turn/advance", "Advance one turn", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := engine.AdvanceTurn()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		app.persist(r)
		writeJSON(w, res)
	})

	rr.Handle(mux, "POST /api/bids", "Submit a sealed bid",
		`{"quest_id":"q1","amount":120,"party_ids":["m1"],"stance":"on_time"}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				QuestID  string   `json:"quest_id"`
				Amount   int      `json:"amount"`
				PartyIDs []string `json:"party_ids"`
				Stance   string   `json:"stance"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			res, err := engine.SubmitBid(body.QuestID, body.Amount, body.PartyIDs, body.Stance)
			if err != nil {
				if rejection(err) {
					writeReject(w, err)
				} else {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}
			app.persist(r)
			writeJSON(w, res)
		})

	rr.Handle(mux, "POST /api/formations/stage", "Stage a party without committing",
		`{"quest_id":"q1","party_ids":["m1","m2"]}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				QuestID  string   `json:"quest_id"`
				PartyIDs []string `json:"party_ids"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err := engine.StageFormation(body.QuestID, body.PartyIDs); err != nil {
				if rejection(err) {
					writeReject(w, err)
				} else {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}
			writeJSON(w, map[string]string{"status": "staged"})
		})

	rr.Handle(mux, "POST /api/formations", "Confirm a party and start the quest",
		`{"quest_id":"q1","party_ids":["m1","m2"]}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				QuestID  string   `json:"quest_id"`
				PartyIDs []string `json:"party_ids"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			res, err := engine.ConfirmFormation(body.QuestID, body.PartyIDs)
			if err != nil {
				if rejection(err) {
					writeReject(w, err)
				} else {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}
			app.persist(r)
			writeJSON(w, res)
		})

	rr.Handle(mux, "POST /api/hires", "Hire a candidate",
		`{"candidate_id":"c1"}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				CandidateID string `json:"candidate_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			res, err := engine.Hire(body.CandidateID)
			if err != nil {
				if rejection(err) {
					writeReject(w, err)
				} else {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
				return
			}
			app.persist(r)
			writeJSON(w, res)
		})

	rr.Handle(mux, "POST /api/recruit", "Rebuild the recruit pool", "", func(w http.ResponseWriter, r *http.Request) {
		pool := engine.RecruitPool()
		app.persist(r)
		writeJSON(w, pool)
	})

	rr.Handle(mux, "POST /api/ops/backup", "Back up the save file", "", func(w http.ResponseWriter, r *http.Request) {
		if app.SavePath == "" {
			writeJSON(w, map[string]string{"status": "skipped"})
			return
		}
		if err := ops.BackupSaveFile(app.SavePath, app.Backups); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	})
}
