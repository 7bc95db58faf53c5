package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	reportError(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Me(ctx context.Context) error

	Products(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Product(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Analyze(ctx context.Context, args []string) error
	Story(ctx context.Context, args []string) error
	Price(ctx context.Context, args []string) error

	Profile(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, products, search, product, price, exit"
	helpSignedIn  = "Available commands: whoami, me, products, search, product, like, delete, analyze, story, price, profile, dashboard, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the CraftConnect CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and passes the rest as arguments. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	help                                   show available commands
//	register | login | logout              session commands
//	whoami                                 show the current session
//	me                                     refresh the user from the backend
//	products [status] [category]           list products
//	search <query>                         full-text product search
//	product <id>                           show one product
//	like <id>                              toggle a like
//	delete <id>                            delete one of your products
//	analyze <file>                         AI analysis of a product photo
//	story <title>                          generate a product story
//	price <materials_cost> <labor_hours> <category>
//	profile <name>                         change your display name
//	dashboard                              seller dashboard
//	exit | quit                            leave the program
//
// Errors returned by command handlers are printed through reportError; the
// loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "me":
			err = a.Me(ctx)

		case "products":
			err = a.Products(ctx, args)
		case "search":
			err = a.Search(ctx, args)
		case "product":
			err = a.Product(ctx, args)
		case "like":
			err = a.Like(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)

		case "analyze":
			err = a.Analyze(ctx, args)
		case "story":
			err = a.Story(ctx, args)
		case "price":
			err = a.Price(ctx, args)

		case "profile":
			err = a.Profile(ctx, args)
		case "dashboard":
			err = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			a.reportError(err)
		}
	}
}
