package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	uploadEnabled() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	List(ctx context.Context) error
	Tags(ctx context.Context) error
	Counts(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	RefreshNow(ctx context.Context) error

	Add(ctx context.Context) error
	AddFile(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Share(ctx context.Context) error
	Open(ctx context.Context, args []string) error

	Theme(ctx context.Context, args []string) error
}

// runREPL is the read-eval-print loop. It reads one line per iteration,
// takes the first token as the command, and dispatches to a. Unknown
// commands are reported back. The loop exits on EOF, on ctx done, or when
// the user types "exit"/"quit".
//
// Handler errors are ignored here: handlers convert their own failures
// into notifications, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, n *Notifier) {
	for {
		if ctx.Err() != nil {
			return
		}

		n.Printf("bk %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || err != io.EOF) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a, n)

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "google":
			_ = a.GoogleLogin(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)
		case "tags":
			_ = a.Tags(ctx)
		case "counts":
			_ = a.Counts(ctx)
		case "filter":
			_ = a.Filter(ctx, args)
		case "refresh":
			_ = a.RefreshNow(ctx)

		case "add":
			_ = a.Add(ctx)
		case "addfile":
			if a.uploadEnabled() {
				_ = a.AddFile(ctx)
			} else {
				n.Failuref("file uploads are disabled (start with -u to enable)")
			}
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "share":
			_ = a.Share(ctx)
		case "open":
			_ = a.Open(ctx, args)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			n.Infof("Bye!")
			return

		default:
			n.Failuref("unknown command: %s", cmd)
		}

		if err != nil {
			// EOF after a final command without trailing newline.
			return
		}
	}
}

func printHelp(a execIface, n *Notifier) {
	if !a.isLoggedIn() {
		n.Infof("Available commands: register, login, google, open <shareId>, theme, exit")
		return
	}
	cmds := "(l)ist, tags, counts, filter, add, delete <id>, share, open <shareId>, refresh, whoami, theme, logout, exit"
	if a.uploadEnabled() {
		cmds = strings.Replace(cmds, "add,", "add, addfile,", 1)
	}
	n.Infof("Available commands: %s", cmds)
}
