package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Artists(ctx context.Context) error
	Artist(ctx context.Context, args []string) error

	Sell(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	Listings(ctx context.Context) error
	Purchases(ctx context.Context) error
	Report(ctx context.Context, args []string) error

	Reports(ctx context.Context) error
	Resolve(ctx context.Context, args []string) error
	RemoveReport(ctx context.Context, args []string) error
	RemoveArtwork(ctx context.Context, args []string) error
	RemoveArtist(ctx context.Context, args []string) error
	RemoveUser(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, (l)ist [query], show <id>, artists, artist <id>, exit"
	helpUser  = "Available commands: (l)ist [query], show <id>, artists, artist <id>, sell, buy <id>, listings, purchases, report <id>, logout, exit"
	helpAdmin = "Admin commands: reports, resolve <id> <pending|reviewed|resolved>, rmreport <id>, rmartwork <id>, rmartist <id>, rmuser <id>, stats"
)

// runREPL reads commands from reader until EOF or exit. Handlers print their
// own results; a returned error is shown to the user and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("am %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			if a.isAdmin() {
				printlnFn(helpAdmin)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "list", "search":
			cmdErr = a.List(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "artists":
			cmdErr = a.Artists(ctx)
		case "artist":
			cmdErr = a.Artist(ctx, args)
		case "sell":
			cmdErr = a.Sell(ctx)
		case "buy":
			cmdErr = a.Buy(ctx, args)
		case "listings":
			cmdErr = a.Listings(ctx)
		case "purchases":
			cmdErr = a.Purchases(ctx)
		case "report":
			cmdErr = a.Report(ctx, args)
		case "reports":
			cmdErr = a.Reports(ctx)
		case "resolve":
			cmdErr = a.Resolve(ctx, args)
		case "rmreport":
			cmdErr = a.RemoveReport(ctx, args)
		case "rmartwork":
			cmdErr = a.RemoveArtwork(ctx, args)
		case "rmartist":
			cmdErr = a.RemoveArtist(ctx, args)
		case "rmuser":
			cmdErr = a.RemoveUser(ctx, args)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
