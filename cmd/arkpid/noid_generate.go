package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkforge/arkpid/noid"
)

func buildNoidGenerateCommand() *cobra.Command {
	var template string
	var naan string
	var shoulder string
	var count int

	cmd := &cobra.Command{
		Use:   "noid-generate",
		Short: "Generate sample NOIDs using a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoidGenerate(template, naan, shoulder, count)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", ".reedeedk", "NOID template")
	cmd.Flags().StringVarP(&naan, "naan", "n", "18474", "NAAN (included in check digit)")
	cmd.Flags().StringVarP(&shoulder, "shoulder", "s", "b2", "Shoulder prefix (included in check digit)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of NOIDs to generate")

	return cmd
}

func runNoidGenerate(template, naan, shoulder string, count int) error {
	tmpl, err := noid.Parse(template)
	if err != nil {
		return err
	}

	fmt.Printf("Template: %s\n", template)
	fmt.Printf("NAAN:     %s\n", naan)
	fmt.Printf("Shoulder: %s\n", shoulder)
	fmt.Printf("Generating %d NOID(s):\n", count)
	fmt.Println()

	for i := 0; i < count; i++ {
		discriminator, err := tmpl.Render(naan, shoulder)
		if err != nil {
			return err
		}

		fullID := shoulder + discriminator
		fullARK := naan + "/" + fullID

		if tmpl.HasCheck {
			base := fullARK[:len(fullARK)-1]
			check := fullARK[len(fullARK)-1:]
			expected := noid.CheckDigit(base)
			fmt.Printf("  ark:/%s  (base: %s, check: %s) %s\n", fullARK, base, check, validMark(check == expected))
		} else {
			fmt.Printf("  ark:/%s\n", fullARK)
		}
	}

	return nil
}
