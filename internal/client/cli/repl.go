package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Status(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	Mkdir(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context) error
	Publish(ctx context.Context) error
	Unpublish(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the filevault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, me, (l)ist, mkdir, upload, download, publish, unpublish, logout, exit")
			} else {
				printlnFn("Available commands: status, register, login, exit")
			}

		case "status":
			_ = a.Status(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "me":
			_ = a.Me(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "mkdir":
			_ = a.Mkdir(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "download":
			_ = a.Download(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "unpublish":
			_ = a.Unpublish(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type help)", cmd))
		}
	}
}
