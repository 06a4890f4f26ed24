package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/UnknownOlympus/ems-console/internal/directory"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/spf13/cobra"
)

const browseHelp = `Type to search; the list refreshes once you stop typing.
  :next, :prev, :page N   change page
  :delete ID              delete an employee
  :delete-all TEXT        delete every employee (TEXT must be "Delete all employees")
  :clear                  clear the search
  :quit                   leave`

// syncWriter serializes renders coming from the debounce timer and the input loop.
type syncWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and search employees interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := &syncWriter{out: cmd.OutOrStdout()}
			dir := app.directory(func(state directory.State) {
				var buf strings.Builder
				renderState(&buf, state)
				_, _ = io.WriteString(out, buf.String())
			})
			defer dir.Close()

			fmt.Fprintln(out, browseHelp)
			if err := dir.LoadPage(cmd.Context(), 0); err != nil {
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
			}

			return browse(cmd.Context(), dir, cmd.InOrStdin(), out)
		},
	}
}

func browse(ctx context.Context, dir *directory.Directory, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Text()
		if !strings.HasPrefix(line, ":") {
			dir.SetQuery(ctx, line)
			continue
		}

		quit, err := runBrowseCommand(ctx, dir, line)
		if err != nil && !errors.Is(err, directory.ErrSuperseded) {
			fmt.Fprintln(out, errorStyle.Render(err.Error()))
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}

func runBrowseCommand(ctx context.Context, dir *directory.Directory, line string) (bool, error) {
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	state := dir.Snapshot()

	switch name {
	case "quit", "q":
		return true, nil
	case "next":
		if state.CurrentPage+1 >= state.TotalPages {
			return false, errors.New("already on the last page")
		}
		return false, dir.ChangePage(ctx, state.CurrentPage+1)
	case "prev":
		if state.CurrentPage == 0 {
			return false, errors.New("already on the first page")
		}
		return false, dir.ChangePage(ctx, state.CurrentPage-1)
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > state.TotalPages {
			return false, fmt.Errorf("page must be between 1 and %d", state.TotalPages)
		}
		return false, dir.ChangePage(ctx, n-1)
	case "delete":
		if arg == "" {
			return false, errors.New("usage: :delete ID")
		}
		return false, dir.Delete(ctx, models.EmployeeID(arg))
	case "delete-all":
		err := dir.DeleteAll(ctx, arg)
		if errors.Is(err, directory.ErrNotConfirmed) {
			// the message is already part of the rendered state
			return false, nil
		}
		return false, err
	case "clear":
		return false, dir.ClearSearch(ctx)
	default:
		return false, fmt.Errorf("unknown command %q", name)
	}
}
