// cmd/demo/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/sghaida/ustore/store"
	"github.com/sghaida/ustore/users"
)

// reporter prints one status line per scenario step, with an optional colored
// marker and indented detail lines underneath.
type reporter struct {
	out  io.Writer
	mark *color.Color
}

func newReporter(out io.Writer, colored bool) *reporter {
	mark := color.New(color.FgGreen, color.Bold)
	if !colored {
		mark.DisableColor()
	}
	return &reporter{out: out, mark: mark}
}

func (r *reporter) step(format string, args ...any) {
	_, _ = r.mark.Fprint(r.out, "✓ ")
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) detail(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, "    "+format+"\n", args...)
}

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := LoadFromEnv()

	flags := flag.NewFlagSet("demo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	empty := flags.Bool("empty", !cfg.Seeded, "start from an empty store")
	noColor := flags.Bool("no-color", !cfg.Color, "disable colored status markers")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Composition root: construct in dependency order, wire by hand.
	st := store.NewSeeded()
	if *empty {
		st = store.New()
	}

	svc, err := users.New(st)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "demo: wiring failed: %v\n", err)
		return 1
	}

	// One structured log at the boundary; the steps below stay log-free.
	slog.New(slog.NewTextHandler(stderr, nil)).
		Info("demo wired", "store", "memory", "seeded", !*empty, "users", st.Len())

	r := newReporter(stdout, !*noColor)

	list := func(label string) {
		all := svc.Users()
		r.step("%s: %d users", label, len(all))
		for _, u := range all {
			r.detail("%d %s <%s>", u.ID, u.Name, u.Email)
		}
	}

	list("list users")

	if u, ok := svc.UserByID(1); ok {
		r.step("find id=1: %s <%s>", u.Name, u.Email)
	} else {
		r.step("find id=1: absent")
	}

	r.step("info id=2: %s", svc.Info(2))

	created := svc.CreateUser("Carlos Rodríguez", "carlos@example.com")
	r.step("create: id=%d assigned to %s", created.ID, created.Name)
	list("list after create")

	svc.RemoveUser(2)
	r.step("delete id=2")
	list("list after delete")

	if _, ok := svc.UserByID(2); !ok {
		r.step("find id=2: absent")
	}
	r.step("info id=999: %s", svc.Info(999))

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
