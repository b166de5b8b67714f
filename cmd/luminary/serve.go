package main

import (
	"fmt"
	"net/http"

	lumhttp "github.com/fwojciec/luminary/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := lumhttp.NewServer(deps.Logger)
	server.Profiles = deps.Profiles
	server.Biographies = deps.Biographies
	server.Quotes = deps.Quotes
	server.Knowledge = deps.Knowledge
	server.RolePlayer = deps.RolePlayer
	server.Lessons = deps.Lessons
	server.Favorites = deps.Favorites

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	httpServer := &http.Server{
		Addr:    c.Addr,
		Handler: server,
	}
	return httpServer.ListenAndServe()
}
