package cli

import (
	"fmt"
	"net/http"

	"habitgrid/internal/database"
	"habitgrid/internal/logger"
	"habitgrid/internal/server"
	"habitgrid/internal/store"
)

type ServeCmd struct {
	Addr string `help:"Address to listen on." default:":5000"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	db, err := database.Open(ctx.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	log := logger.Get()
	srv := server.New(store.NewHabitStore(db), log)

	log.Info("starting habit server", "addr", c.Addr, "db", ctx.DBPath)
	fmt.Printf("Listening on %s\n", c.Addr)
	if err := http.ListenAndServe(c.Addr, srv.Router()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
