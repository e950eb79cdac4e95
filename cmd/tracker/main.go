package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/internal/tracker"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}

func newApp(out io.Writer) *cli.App {
	recordFlags := []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "amount", Required: true},
		&cli.StringFlag{Name: "category", Required: true},
		&cli.StringFlag{Name: "date", Required: true, Usage: "YYYY-MM-DD"},
		&cli.StringFlag{Name: "description"},
	}

	return &cli.App{
		Name:      "tracker",
		Usage:     "personal finance tracker client",
		Writer:    out,
		ErrWriter: os.Stderr,
		// main decides the exit code; Run only reports.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   tracker.DefaultBaseURL,
				EnvVars: []string{"TRACKER_API_URL"},
				Usage:   "base URL of the API, including the prefix",
			},
			&cli.BoolFlag{Name: "debug", Usage: "dump the client state after each command"},
		},
		Commands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "show totals and the expense breakdown by category",
				Action: func(c *cli.Context) error {
					session, err := refreshed(c)
					if err != nil {
						return err
					}
					printSummary(c.App.Writer, session.State())
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list incomes and expenses, newest first",
				Action: func(c *cli.Context) error {
					session, err := refreshed(c)
					if err != nil {
						return err
					}
					st := session.State()
					printTransactions(c.App.Writer, "Incomes", st.Incomes)
					printTransactions(c.App.Writer, "Expenses", st.Expenses)
					return nil
				},
			},
			{
				Name:      "add",
				Usage:     "add an income or expense",
				ArgsUsage: "income|expense",
				Flags:     recordFlags,
				Action: func(c *cli.Context) error {
					kind, err := kindArg(c, 0)
					if err != nil {
						return err
					}
					session := newSession(c)
					err = session.Add(c.Context, kind, inputFromFlags(c))
					return finish(c, session, err)
				},
			},
			{
				Name:      "update",
				Usage:     "replace every field of an income or expense",
				ArgsUsage: "income|expense ID",
				Flags:     recordFlags,
				Action: func(c *cli.Context) error {
					kind, err := kindArg(c, 0)
					if err != nil {
						return err
					}
					id := c.Args().Get(1)
					if id == "" {
						return cli.Exit("missing ID", 2)
					}
					session := newSession(c)
					err = session.Update(c.Context, kind, id, inputFromFlags(c))
					return finish(c, session, err)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an income or expense",
				ArgsUsage: "income|expense ID",
				Action: func(c *cli.Context) error {
					kind, err := kindArg(c, 0)
					if err != nil {
						return err
					}
					id := c.Args().Get(1)
					if id == "" {
						return cli.Exit("missing ID", 2)
					}
					session := newSession(c)
					err = session.Delete(c.Context, kind, id)
					return finish(c, session, err)
				},
			},
		},
	}
}

func newSession(c *cli.Context) *tracker.Session {
	return tracker.NewSession(tracker.NewClient(c.String("api"), nil))
}

func refreshed(c *cli.Context) (*tracker.Session, error) {
	session := newSession(c)
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	err := session.Refresh(ctx)
	debugDump(c, session)
	if err != nil {
		return nil, cli.Exit(session.State().Error, 1)
	}
	return session, nil
}

// finish reports the banner of a failed mutation, or the success line.
func finish(c *cli.Context, session *tracker.Session, err error) error {
	debugDump(c, session)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s (%v)", session.State().Error, err), 1)
	}
	fmt.Fprintln(c.App.Writer, "ok")
	printSummary(c.App.Writer, session.State())
	return nil
}

func debugDump(c *cli.Context, session *tracker.Session) {
	if c.Bool("debug") {
		fmt.Fprint(c.App.ErrWriter, spew.Sdump(session.State()))
	}
}

func kindArg(c *cli.Context, i int) (tracker.Kind, error) {
	switch arg := c.Args().Get(i); arg {
	case string(tracker.Income):
		return tracker.Income, nil
	case string(tracker.Expense):
		return tracker.Expense, nil
	default:
		return "", cli.Exit(fmt.Sprintf("expected income or expense, got %q", arg), 2)
	}
}

// inputFromFlags sends numeric amounts as JSON numbers and anything else as
// a string, leaving rejection to the server.
func inputFromFlags(c *cli.Context) tracker.Input {
	var amount any = c.String("amount")
	if d, err := decimal.NewFromString(c.String("amount")); err == nil {
		amount = json.Number(d.String())
	}

	return tracker.Input{
		Title:       c.String("title"),
		Amount:      amount,
		Category:    c.String("category"),
		Date:        c.String("date"),
		Description: c.String("description"),
	}
}

func printSummary(w io.Writer, st tracker.State) {
	fmt.Fprintf(w, "Income:   %s\n", st.Totals.Income.StringFixed(2))
	fmt.Fprintf(w, "Expenses: %s\n", st.Totals.Expenses.StringFixed(2))
	fmt.Fprintf(w, "Balance:  %s\n", st.Totals.Balance.StringFixed(2))

	slices := tracker.CategoryBreakdown(st.Expenses)
	if len(slices) == 0 {
		fmt.Fprintln(w, "No expenses logged yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tSHARE")
	for _, s := range slices {
		fmt.Fprintf(tw, "%s\t%s\t%.1f%%\n", s.Name, s.Value.StringFixed(2), s.Percent)
	}
	_ = tw.Flush()
}

func printTransactions(w io.Writer, heading string, txs []tracker.Transaction) {
	fmt.Fprintf(w, "%s (%d)\n", heading, len(txs))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE\tCATEGORY\tAMOUNT")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.Title, tx.Category, tracker.AmountOf(tx.Amount).StringFixed(2))
	}
	_ = tw.Flush()
}
