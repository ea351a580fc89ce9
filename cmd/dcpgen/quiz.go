package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcpgen/quiz"
)

type quizFlags struct {
	kind       string
	difficulty string
	count      int
	seed       int64
	asJSON     bool
}

func newQuizCmd(a *app) *cobra.Command {
	var f quizFlags

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Print a numbered exercise sheet with an answer key",
		Long: `Each exercise asks whether an expression is convex, concave or not DCP.
Kinds are drawn uniformly unless --kind (or the kind setting) fixes one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuiz(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "exercise kind: convex, concave or non-dcp")
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", "", "difficulty preset (default from settings)")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of exercises (default from settings)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default from settings)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "emit JSON lines")

	return cmd
}

func (a *app) runQuiz(cmd *cobra.Command, f quizFlags) error {
	d := a.cfg.Difficulty
	if f.difficulty != "" {
		var err error
		if d, err = quiz.ParseDifficulty(f.difficulty); err != nil {
			return err
		}
	}

	kind, fixed, err := a.cfg.QuizKind()
	if err != nil {
		return err
	}
	if f.kind != "" {
		if kind, err = quiz.ParseKind(f.kind); err != nil {
			return err
		}
		fixed = true
	}

	count := f.count
	if count <= 0 {
		count = a.cfg.Count
	}

	gen, err := a.generator(f.seed)
	if err != nil {
		return err
	}
	b := quiz.NewBuilder(gen, a.source(f.seed), a.cfg.Presets)

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	answers := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		var ex quiz.Exercise
		if fixed {
			ex, err = b.NewOfKind(kind, d)
		} else {
			ex, err = b.New(d)
		}
		if err != nil {
			return err
		}

		if f.asJSON {
			if err := enc.Encode(ex); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%d. %s\n", i, ex.Expression)
		answers = append(answers, fmt.Sprintf("%d. %s", i, ex.Answer))
	}

	if !f.asJSON {
		fmt.Fprintln(out, "\nAnswers:")
		for _, line := range answers {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
