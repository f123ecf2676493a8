package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arkforge/arkpid/internal/config"
	"github.com/arkforge/arkpid/internal/infra/database"
	"github.com/arkforge/arkpid/internal/infra/repository"
	"github.com/arkforge/arkpid/internal/usecase"
)

func buildNoidCheckCommand() *cobra.Command {
	var ark string
	var shoulder string
	var limit int
	var showInvalid bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "noid-check",
		Short: "Check NOID validity for ARKs in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoidCheck(cmd.Context(), ark, shoulder, limit, showInvalid, verbose)
		},
	}

	cmd.Flags().StringVarP(&ark, "ark", "a", "", `Check a specific ARK (e.g. "18474/b2r20t674")`)
	cmd.Flags().StringVarP(&shoulder, "shoulder", "s", "", "Check all ARKs for a specific shoulder")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Limit number of ARKs to check (0=all)")
	cmd.Flags().BoolVarP(&showInvalid, "show-invalid", "i", false, "Only show invalid ARKs")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	return cmd
}

func runNoidCheck(ctx context.Context, ark, shoulder string, limit int, showInvalid, verbose bool) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		return err
	}

	shoulderRepo := repository.NewShoulderRepository(db)
	mappingRepo := repository.NewMappingRepository(db)
	auditor := usecase.NewAuditor(shoulderRepo, mappingRepo, conf.Mint.DefaultTemplate)

	if ark != "" {
		detail, err := auditor.CheckOne(ctx, ark)
		if err != nil {
			return err
		}

		fmt.Printf("ARK:      %s\n", detail.ARK)
		fmt.Printf("Shoulder: %s\n", detail.Shoulder)
		fmt.Printf("Template: %s\n", detail.Template)
		fmt.Printf("Full ID:  %s\n", detail.FullID)
		if detail.Expected != "" {
			fmt.Printf("Expected: %s\n", detail.Expected)
			fmt.Printf("Actual:   %s\n", detail.Actual)
		}
		fmt.Printf("Valid:    %s\n", validMark(detail.Valid))
		return nil
	}

	report, err := auditor.Check(ctx, usecase.AuditFilter{
		Shoulder: shoulder,
		Limit:    limit,
		Verbose:  verbose || showInvalid,
	})
	if err != nil {
		return err
	}

	if verbose || showInvalid {
		for _, entry := range report.InvalidARKs {
			fmt.Printf("✗ ark:/%s (expected: %s, actual: %s)\n", entry.Identifier, entry.Expected, entry.Actual)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Total checked:    %d\n", report.Total)
	fmt.Printf("Valid:            %d\n", report.Valid)
	fmt.Printf("Invalid:          %d\n", report.Invalid)
	fmt.Printf("No check digit:   %d\n", report.NoCheckDigit)

	if len(report.InvalidARKs) > 0 && !verbose && !showInvalid {
		fmt.Println()
		fmt.Println("First 10 invalid ARKs:")
		for _, entry := range report.InvalidARKs {
			fmt.Printf("  ✗ ark:/%s (expected: %s, actual: %s)\n", entry.Identifier, entry.Expected, entry.Actual)
		}
	}

	return nil
}

func validMark(valid bool) string {
	if valid {
		return "✓"
	}
	return "✗"
}
