package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-while/go-foxstarter/internal/client"
	"github.com/go-while/go-foxstarter/internal/view"
)

// RunLines drives the view from line commands read from in, writing the
// resulting state to out after every command. It is used when stdin is not
// a terminal.
//
//	+ | inc        increment
//	- | dec        decrement
//	t | theme      toggle theme
//	hello test hau call a diagnostic endpoint
//	q | quit       stop
func RunLines(ctx context.Context, v *view.View, in io.Reader, out io.Writer) error {
	printState(out, v.State())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" || strings.HasPrefix(cmd, "#") {
			continue
		}

		var err error
		switch strings.ToLower(cmd) {
		case "q", "quit", "exit":
			return nil
		case "+", "inc", "increment":
			err = v.Increment(ctx)
		case "-", "dec", "decrement":
			err = v.Decrement(ctx)
		case "t", "theme":
			err = v.ToggleTheme(ctx)
		case client.EndpointHello, client.EndpointTest, client.EndpointRegional:
			err = v.Ping(ctx, strings.ToLower(cmd))
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
			continue
		}
		// failures are already reported through the status line
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		printState(out, v.State())
	}
	return errors.Wrap(scanner.Err(), "reading commands failed")
}

func printState(out io.Writer, st view.State) {
	fmt.Fprintf(out, "count=%d theme=%s", st.Count, st.Theme)
	if st.Status != "" {
		fmt.Fprintf(out, " status=%q", st.Status)
	}
	fmt.Fprintln(out)
}
