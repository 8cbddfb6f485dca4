package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/users"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var prsUsername string

var prsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Print the personal records of a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		user, err := users.NewRepo(pool).GetByUsername(ctx, prsUsername)
		if err != nil {
			return err
		}

		prs, err := exercises.NewRepo(pool).PersonalRecords(ctx, user.ID)
		if err != nil {
			return err
		}

		renderPersonalRecords(os.Stdout, prs)
		return nil
	},
}

func init() {
	prsCmd.Flags().StringVar(&prsUsername, "username", "", "whose records to show")
	_ = prsCmd.MarkFlagRequired("username")
}

// renderPersonalRecords prints one line per exercise, best record first (highlighted).
func renderPersonalRecords(w io.Writer, prs *exercises.PersonalRecords) {
	header := color.New(color.Bold, color.Underline)
	best := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)

	if len(prs.Weighted) == 0 && len(prs.Bodyweight) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	if len(prs.Weighted) > 0 {
		header.Fprintln(w, "WEIGHTED")
		for _, pr := range prs.Weighted {
			fmt.Fprintf(w, "  %-24s", pr.Name)
			for i, r := range pr.Records {
				cell := fmt.Sprintf("%gkg x %d", r.Weight, r.Reps)
				if i == 0 {
					best.Fprintf(w, " %-14s", cell)
				} else {
					faint.Fprintf(w, " %-14s", cell)
				}
			}
			fmt.Fprintln(w)
		}
	}

	if len(prs.Bodyweight) > 0 {
		header.Fprintln(w, "BODYWEIGHT")
		for _, pr := range prs.Bodyweight {
			fmt.Fprintf(w, "  %-24s", pr.Name)
			for i, reps := range pr.Reps {
				cell := fmt.Sprintf("%d reps", reps)
				if i == 0 {
					best.Fprintf(w, " %-14s", cell)
				} else {
					faint.Fprintf(w, " %-14s", cell)
				}
			}
			fmt.Fprintln(w)
		}
	}
}
