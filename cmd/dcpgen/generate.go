package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/expr"
	"github.com/katalvlaran/dcpgen/quiz"
)

type generateFlags struct {
	curvature  string
	difficulty string
	pTerm      float64
	growth     float64
	violate    bool
	count      int
	seed       int64
	asJSON     bool
}

// generated is the JSON shape of one generate result.
type generated struct {
	Expression string     `json:"expression"`
	Violated   bool       `json:"violated"`
	Attempts   int        `json:"attempts"`
	Tree       *expr.Node `json:"tree"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate raw expressions for a requested curvature",
		Long: `Generates expressions whose root matches --curvature.

--p-term and --growth override the parameters of --difficulty. With --violate
one node of each tree is swapped for its opposite-curvature counterpart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.curvature, "curvature", "convex", "root curvature: convex, concave, affine or any")
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", "", "difficulty preset (default from settings)")
	cmd.Flags().Float64Var(&f.pTerm, "p-term", 0, "root terminal probability in (0,1]")
	cmd.Flags().Float64Var(&f.growth, "growth", 0, "per-level growth of the terminal probability (>= 1)")
	cmd.Flags().BoolVar(&f.violate, "violate", false, "inject one DCP violation")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of expressions (default from settings)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default from settings)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "emit JSON lines with the expression tree")

	return cmd
}

// curvatureProfile maps a curvature name to a root profile.
func curvatureProfile(name string) (catalog.Profile, error) {
	switch strings.ToLower(name) {
	case "convex":
		return catalog.Profile{{Convex: true}}, nil
	case "concave":
		return catalog.Profile{{Concave: true}}, nil
	case "affine":
		return catalog.Profile{{Convex: true, Concave: true}}, nil
	case "any":
		return catalog.Profile{{}}, nil
	}
	return nil, fmt.Errorf("unknown curvature %q", name)
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) error {
	profile, err := curvatureProfile(f.curvature)
	if err != nil {
		return err
	}

	params, err := a.params(f.difficulty)
	if err != nil {
		return err
	}
	if f.pTerm != 0 {
		params.TerminateProbability = f.pTerm
	}
	if f.growth != 0 {
		params.GrowthFactor = f.growth
	}

	count := f.count
	if count <= 0 {
		count = a.cfg.Count
	}

	gen, err := a.generator(f.seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	for i := 0; i < count; i++ {
		res, err := gen.Generate([]catalog.Profile{profile}, params.TerminateProbability, params.GrowthFactor, !f.violate)
		if err != nil {
			return err
		}
		a.logger.Debug("expression generated",
			zap.Int("index", i), zap.Int("depth", expr.Depth(res.Tree)), zap.Bool("violated", res.Violated))

		if f.asJSON {
			if err := enc.Encode(generated{res.Expression, res.Violated, res.Attempts, res.Tree}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, res.Expression)
	}

	return nil
}

// params resolves a difficulty name (empty selects the configured one).
func (a *app) params(name string) (quiz.Params, error) {
	d := a.cfg.Difficulty
	if name != "" {
		var err error
		if d, err = quiz.ParseDifficulty(name); err != nil {
			return quiz.Params{}, err
		}
	}
	return a.cfg.Presets[d], nil
}
