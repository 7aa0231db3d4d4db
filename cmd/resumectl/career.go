package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-insight/internal/models"
)

var (
	careerSkills    string
	careerInterests string
)

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Suggest careers for a set of skills and interests",
	Args:  cobra.NoArgs,
	RunE:  runCareer,
}

func init() {
	careerCmd.Flags().StringVarP(&careerSkills, "skills", "s", "", "comma separated skills")
	careerCmd.Flags().StringVar(&careerInterests, "interests", "", "areas of interest")
	_ = careerCmd.MarkFlagRequired("skills")
	_ = careerCmd.MarkFlagRequired("interests")
	rootCmd.AddCommand(careerCmd)
}

func runCareer(cmd *cobra.Command, args []string) error {
	if newAdvisor == nil {
		return errors.New("career advisor not configured")
	}

	advisor, err := newAdvisor()
	if err != nil {
		return err
	}

	resp, err := advisor.Suggest(context.Background(), models.CareerRequest{
		Skills:    careerSkills,
		Interests: careerInterests,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Suggestions)
	return nil
}
