package main

import (
	"fmt"

	"github.com/2beens/gymtracker/internal/users"

	"github.com/spf13/cobra"
)

var (
	resetUsername string
	resetPassword string
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := users.NewService(users.NewRepo(pool), nil).ResetPassword(ctx, resetUsername, resetPassword); err != nil {
			return err
		}
		fmt.Printf("password of %s reset\n", resetUsername)
		return nil
	},
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetUsername, "username", "", "user to reset the password for")
	resetPasswordCmd.Flags().StringVar(&resetPassword, "password", "", "new password")
	_ = resetPasswordCmd.MarkFlagRequired("username")
	_ = resetPasswordCmd.MarkFlagRequired("password")
}
