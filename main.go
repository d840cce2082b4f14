package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"guildhall/internal/config"
	"guildhall/internal/game"
	"guildhall/internal/gen"
	"guildhall/internal/rng"
	"guildhall/internal/save"
	"guildhall/internal/server"
)

func main() {
	ctx := context.Background()

	srv, bal, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var store save.Store
	var savePath string
	switch srv.Store {
	case "sqlite":
		if err := os.MkdirAll(srv.DataDir, 0o755); err != nil {
			log.Fatal(err)
		}
		store, err = save.NewSQLStore(filepath.Join(srv.DataDir, "guildhall.sqlite"))
		if err != nil {
			log.Fatal(err)
		}
	default:
		fs, ferr := save.NewFileStore(srv.DataDir)
		if ferr != nil {
			log.Fatal(ferr)
		}
		store = fs
		savePath = fs.Path()
	}
	defer store.Close()

	src := rng.Seeded(srv.Seed)

	snap, ok, err := store.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	var state *game.State
	if ok {
		state = save.Restore(snap, bal)
	} else {
		state = game.NewState(&gen.Generator{Balance: bal, RNG: src})
		if err := store.Save(ctx, save.Capture(state)); err != nil {
			log.Fatal(err)
		}
	}

	engine := game.NewEngine(bal, src, state)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	app := &server.App{Engine: engine, Store: store, SavePath: savePath, Backups: srv.Backups}
	server.RegisterAPIRoutes(mux, rr, app)

	addr := ":" + srv.Port
	fmt.Printf("guildhall listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
