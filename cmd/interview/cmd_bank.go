package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/questions"
	"github.com/iammorganparry/interview-coach/internal/scoring"
)

// bankFlag registers --bank, defaulting to QUESTION_BANK_PATH.
func bankFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("bank", os.Getenv("QUESTION_BANK_PATH"), "Question bank YAML file (default: built-in bank)")
}

func parseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category %q (want one of %s)", s, categoryList())
	}
	return c, nil
}

func categoryList() string {
	ids := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		ids = append(ids, string(c))
	}
	return strings.Join(ids, ", ")
}

func newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List interview categories",
		Args:  cobra.NoArgs,
	}
	bankPath := bankFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		bank, err := questions.Load(*bankPath)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), bank.Categories())
	}
	return cmd
}

func newQuestionsCommand() *cobra.Command {
	var category string
	var count int

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the questions an interview in a category would ask",
		Args:  cobra.NoArgs,
	}
	bankPath := bankFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := parseCategory(category)
		if err != nil {
			return err
		}
		bank, err := questions.Load(*bankPath)
		if err != nil {
			return err
		}
		for i, q := range bank.QuestionsFor(c, count) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
		}
		return nil
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Interview category ("+categoryList()+")")
	cmd.Flags().IntVarP(&count, "count", "n", 8, "Number of questions")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newScoreCommand() *cobra.Command {
	var category, question, answer string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single answer offline and print the analysis as JSON",
		Args:  cobra.NoArgs,
	}
	bankPath := bankFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := parseCategory(category)
		if err != nil {
			return err
		}
		bank, err := questions.Load(*bankPath)
		if err != nil {
			return err
		}
		if answer == "-" {
			data, err := readAll(cmd)
			if err != nil {
				return err
			}
			answer = data
		}
		return writeJSON(cmd.OutOrStdout(), scoring.New(bank).Score(question, answer, c))
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Interview category ("+categoryList()+")")
	cmd.Flags().StringVarP(&question, "question", "q", "", "Question being answered")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", `Answer text, or "-" to read stdin`)
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func newValidateBankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-bank PATH",
		Short: "Validate a question bank file against the bank schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read question bank: %w", err)
			}
			if errs := questions.Validate(data); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", e)
				}
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(errs))
			}
			if _, err := questions.Parse(data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}

func readAll(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
