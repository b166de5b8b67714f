package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/luminary"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Biographies luminary.BiographyService
	Quotes      luminary.QuoteService
	Knowledge   luminary.KnowledgeService
	Profiles    luminary.ProfileService
	Favorites   luminary.FavoriteService
	RolePlayer  luminary.RolePlayer
	Lessons     luminary.LessonGenerator
	Cache       luminary.Cache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log requests to stderr"`

	Search   SearchCmd   `cmd:"" help:"Look up a person's summary"`
	Profile  ProfileCmd  `cmd:"" help:"Show a person's full profile"`
	Timeline TimelineCmd `cmd:"" help:"Show key dated events from a person's biography"`
	Works    WorksCmd    `cmd:"" help:"List a person's notable works"`
	Quotes   QuotesCmd   `cmd:"" help:"Show quotes attributed to a person"`
	Explore  ExploreCmd  `cmd:"" help:"List famous people in a field"`
	Featured FeaturedCmd `cmd:"" help:"Show the featured people roster"`
	Daily    DailyCmd    `cmd:"" help:"Show the quote of the day"`
	Chat     ChatCmd     `cmd:"" help:"Chat with a historical figure"`
	Lessons  LessonsCmd  `cmd:"" help:"Distill life lessons from a person's biography"`
	Fav      FavCmd      `cmd:"" help:"Manage favorite people"`
	Serve    ServeCmd    `cmd:"" help:"Run the dashboard HTTP server"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name string `arg:"" help:"Person to look up"`
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	Name string `arg:"" help:"Person to profile"`
}

// TimelineCmd is the "timeline" subcommand.
type TimelineCmd struct {
	Name string `arg:"" help:"Person to build a timeline for"`
	Max  int    `short:"m" default:"8" help:"Maximum number of events"`
}

// WorksCmd is the "works" subcommand.
type WorksCmd struct {
	Name string `arg:"" help:"Person whose works to list"`
}

// QuotesCmd is the "quotes" subcommand.
type QuotesCmd struct {
	Name string `arg:"" help:"Person to quote"`
	Max  int    `short:"m" default:"12" help:"Maximum number of quotes"`
}

// ExploreCmd is the "explore" subcommand.
type ExploreCmd struct {
	Field string `arg:"" help:"Field to explore (run without arguments to list fields)" optional:""`
	Limit int    `short:"l" default:"30" help:"Maximum number of people"`
}

// FeaturedCmd is the "featured" subcommand.
type FeaturedCmd struct {
	Describe bool `short:"d" help:"Fetch a one-line summary for each person"`
}

// DailyCmd is the "daily" subcommand.
type DailyCmd struct{}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Persona string `arg:"" help:"Historical figure to impersonate"`
	Message string `arg:"" help:"Message to send"`
}

// LessonsCmd is the "lessons" subcommand.
type LessonsCmd struct {
	Name string `arg:"" help:"Person to learn from"`
}

// FavCmd groups the favorites subcommands.
type FavCmd struct {
	Add    FavAddCmd    `cmd:"" help:"Add a person to favorites"`
	Remove FavRemoveCmd `cmd:"" help:"Remove a person from favorites"`
	List   FavListCmd   `cmd:"" default:"1" help:"List favorite people"`
}

// FavAddCmd is the "fav add" subcommand.
type FavAddCmd struct {
	Name string `arg:"" help:"Person to add"`
}

// FavRemoveCmd is the "fav remove" subcommand.
type FavRemoveCmd struct {
	Name string `arg:"" help:"Person to remove"`
}

// FavListCmd is the "fav list" subcommand.
type FavListCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"LUMINARY_ADDR" help:"Listen address"`
}
