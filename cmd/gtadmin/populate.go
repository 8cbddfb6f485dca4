package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/seed"
	"github.com/2beens/gymtracker/internal/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

var (
	populateNamesFile    string
	populateSuperuser    string
	populatePassword     string
	populateEmail        string
	populateDemoUser     string
	populateDemoPassword string
	populateDemoSets     int
	populateDemoDays     int
	populateSeed         int64
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Seed exercise names, the superuser and optionally a demo history",
	Long: `Populate inserts the exercise name catalogue (built-in defaults, or the
YAML file given with --names-file) and creates the superuser when
--superuser is set. Existing names and users are left untouched, so it
is safe to run more than once.

With --demo-user a regular user is created (if absent) and --demo-sets
fake sets spread over the last --demo-days days are logged for it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if populateSuperuser != "" && populatePassword == "" {
			return errors.New("--password is required with --superuser")
		}

		names := seed.DefaultNames
		if populateNamesFile != "" {
			var err error
			if names, err = seed.LoadNames(populateNamesFile); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		exercisesRepo := exercises.NewRepo(pool)
		// sessions are only needed for login / logout
		usersService := users.NewService(users.NewRepo(pool), nil)
		populator := seed.NewPopulator(exercisesRepo, usersService)

		var superuser *seed.Superuser
		if populateSuperuser != "" {
			superuser = &seed.Superuser{
				Username: populateSuperuser,
				Email:    populateEmail,
				Password: populatePassword,
			}
		}

		result, err := populator.Populate(ctx, names, superuser)
		if err != nil {
			return err
		}
		fmt.Printf("names added: %d, already present: %d\n", result.NamesAdded, result.NamesSkipped)
		if result.SuperuserCreated {
			fmt.Printf("superuser %s created\n", populateSuperuser)
		}

		if populateDemoUser == "" {
			return nil
		}

		demoUser, err := usersService.GetByUsername(ctx, populateDemoUser)
		if errors.Is(err, users.ErrUserNotFound) {
			demoUser, err = usersService.Register(ctx, users.RegisterParams{
				Username:    populateDemoUser,
				Email:       populateDemoUser + "@gymtracker.local",
				Password:    populateDemoPassword,
				DisplayName: populateDemoUser,
			})
		}
		if err != nil {
			return fmt.Errorf("demo user: %w", err)
		}

		to := time.Now()
		from := to.AddDate(0, 0, -populateDemoDays)
		sets := seed.DemoSets(gofakeit.New(populateSeed), demoUser.ID, names, populateDemoSets, from, to)
		added, err := populator.AddSets(ctx, sets)
		if err != nil {
			return err
		}
		fmt.Printf("demo sets added for %s: %d\n", populateDemoUser, added)

		return nil
	},
}

func init() {
	populateCmd.Flags().StringVar(&populateNamesFile, "names-file", "", "YAML exercise name catalogue (defaults to the built-in list)")
	populateCmd.Flags().StringVar(&populateSuperuser, "superuser", "", "superuser username to create if absent")
	populateCmd.Flags().StringVar(&populatePassword, "password", "", "superuser password")
	populateCmd.Flags().StringVar(&populateEmail, "email", "", "superuser email (defaults to <username>@gymtracker.local)")
	populateCmd.Flags().StringVar(&populateDemoUser, "demo-user", "", "username to generate a demo history for")
	populateCmd.Flags().StringVar(&populateDemoPassword, "demo-password", "demo-password", "password of the demo user, if it gets created")
	populateCmd.Flags().IntVar(&populateDemoSets, "demo-sets", 200, "number of demo sets to generate")
	populateCmd.Flags().IntVar(&populateDemoDays, "demo-days", 180, "demo sets are spread over this many past days")
	populateCmd.Flags().Int64Var(&populateSeed, "seed", 0, "fake data seed (0 picks a random one)")
}
