package main

import (
	"fmt"

	"github.com/2beens/gymtracker/internal/exercises"

	"github.com/spf13/cobra"
)

var (
	mergeFrom string
	mergeInto string
)

var mergeNamesCmd = &cobra.Command{
	Use:   "merge-names",
	Short: "Move every set of one exercise name onto another and delete the first",
	Long: `Merge-names repoints all sets logged under --from to --into (creating
--into with the same kind when it does not exist yet) and removes --from.
Everything happens in a single transaction.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		updated, err := exercises.NewRepo(pool).MergeNames(ctx, mergeFrom, mergeInto)
		if err != nil {
			return err
		}
		fmt.Printf("merged [%s] into [%s], %d set(s) updated\n", mergeFrom, mergeInto, updated)
		return nil
	},
}

func init() {
	mergeNamesCmd.Flags().StringVar(&mergeFrom, "from", "", "exercise name to delete")
	mergeNamesCmd.Flags().StringVar(&mergeInto, "into", "", "exercise name that receives the sets")
	_ = mergeNamesCmd.MarkFlagRequired("from")
	_ = mergeNamesCmd.MarkFlagRequired("into")
}
