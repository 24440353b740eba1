package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/database/repository"
	"github.com/jask/jaskfx/internal/secrets"
	"github.com/jask/jaskfx/internal/service"
	"github.com/jask/jaskfx/internal/testdata"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the currency API access key",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key>",
			Short: "Store the access key outside config.toml",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := secrets.NewStore("")
				if err != nil {
					return err
				}
				if err := s.Put(keyProvider, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Access key saved.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Remove the stored access key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := secrets.NewStore("")
				if err != nil {
					return err
				}
				if err := s.Delete(keyProvider); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Access key removed.")
				return nil
			},
		},
	)
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved currency catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			store := repository.NewCurrencyRepo(db)

			snap, err := store.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if snap == nil {
				fmt.Fprintln(out, "No saved catalog.")
				return nil
			}
			fmt.Fprintf(out, "snapshot %s\nsaved    %s\ncount    %d\n",
				snap.ID, snap.SavedAt.Local().Format(time.DateTime), snap.Count)
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective config to the config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.Path())
			return nil
		},
	})
	return cmd
}

func seedCmd() *cobra.Command {
	var jitter bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Save a sample catalog for offline use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			store := repository.NewCurrencyRepo(db)

			var r *rand.Rand
			if jitter {
				r = rand.New(rand.NewSource(time.Now().UnixNano()))
			}
			if err := testdata.Seed(cmd.Context(), store, r); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample catalog saved.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&jitter, "jitter", false, "shuffle and nudge the sample quotes")
	return cmd
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved currency catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := (&service.MaintenanceService{DB: db}).Reset(cmd.Context())
			if err != nil {
				return err
			}
			log.Infow("saved catalog reset", "removed", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d saved currencies.\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
