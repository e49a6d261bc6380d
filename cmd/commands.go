package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"meddesk-hms/cmd/bootstrap"
	"meddesk-hms/internal/converter"
	"meddesk-hms/internal/delivery/dto"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			app.SeedDefaultAdmin(cmd.Context())
			app.Run()
			return nil
		},
	}
}

func seedAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the default account if no users exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			seed := app.Config.Seed
			created, err := app.Usecases.Seed.SeedDefaultAdmin(cmd.Context(), seed.AdminUsername, seed.AdminPassword)
			if err != nil {
				return fmt.Errorf("seed default account: %w", err)
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created account %q\n", seed.AdminUsername)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Users already exist, nothing to do")
			}
			return nil
		},
	}
}

func patientsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List patients, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			patients, err := app.Usecases.Patient.ListPatients(cmd.Context())
			if err != nil {
				return err
			}

			return writePatientTable(cmd.OutOrStdout(), converter.PatientSummariesToResponse(patients, search))
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by id, name or national id")
	return cmd
}

func writePatientTable(out io.Writer, rows []dto.PatientSummaryResponse) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFirst Name\tLast Name\tNational ID")
	for _, p := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.FirstName, p.LastName, p.NationalID)
	}
	return tw.Flush()
}

func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check a username and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			creds := dto.LoginRequest{Username: username, Password: password}
			creds.TrimSpace()

			result, err := app.Usecases.Auth.VerifyUserPassword(cmd.Context(), creds.Username, creds.Password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.OK {
				return errors.New("login failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
