package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	RecoverPassword(ctx context.Context) error
	Logout(ctx context.Context) error

	StepBasics(ctx context.Context) error
	StepConditions(ctx context.Context) error
	StepExposure(ctx context.Context) error
	StepCylinder(ctx context.Context) error
	StepReview(ctx context.Context) error

	ShowDraft(ctx context.Context) error
	DiscardDraft(ctx context.Context) error

	Spots(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them. It exits on EOF
// or "exit"/"quit". Handler errors are not bubbled up here; handlers report
// to the user themselves, keeping the loop alive.
//
// Logged out: register, login, recover, exit.
// Logged in: log1..log5 (the wizard), log (resume), show, discard, spots,
// stats, logout, exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("reeflog> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: log1 log2 log3 log4 log5, log, show, discard, spots, stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, recover, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.RecoverPassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "log1":
			_ = a.StepBasics(ctx)

		case "log2":
			_ = a.StepConditions(ctx)

		case "log3":
			_ = a.StepExposure(ctx)

		case "log4":
			_ = a.StepCylinder(ctx)

		case "log5":
			_ = a.StepReview(ctx)

		case "log":
			// Walk the whole wizard; every step persists on its own, so
			// quitting midway and coming back later loses nothing.
			if err := a.StepBasics(ctx); err != nil {
				break
			}
			if err := a.StepConditions(ctx); err != nil {
				break
			}
			if err := a.StepExposure(ctx); err != nil {
				break
			}
			if err := a.StepCylinder(ctx); err != nil {
				break
			}
			_ = a.StepReview(ctx)

		case "show":
			_ = a.ShowDraft(ctx)

		case "discard":
			_ = a.DiscardDraft(ctx)

		case "spots":
			_ = a.Spots(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
