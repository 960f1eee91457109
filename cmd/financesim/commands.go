package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riskmanagement123/financesim"
)

func islamicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "islamic",
		Short: "Simulate Mudarabah (profit and loss sharing) financing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(viper.GetViper())
			if err != nil {
				return err
			}
			m, err := s.islamicModel()
			if err != nil {
				return fmt.Errorf("islamic model: %w", err)
			}
			return runSingle(cmd, m, s.window)
		},
	}
}

func conventionalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conventional",
		Short: "Simulate fixed-interest (compound) financing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(viper.GetViper())
			if err != nil {
				return err
			}
			m, err := s.conventionalModel()
			if err != nil {
				return fmt.Errorf("conventional model: %w", err)
			}
			return runSingle(cmd, m, s.window)
		},
	}
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run both financing models on the same business and window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(viper.GetViper())
			if err != nil {
				return err
			}
			im, err := s.islamicModel()
			if err != nil {
				return fmt.Errorf("islamic model: %w", err)
			}
			cm, err := s.conventionalModel()
			if err != nil {
				return fmt.Errorf("conventional model: %w", err)
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			engine.Register(im, financesim.LogPlugin{Logger: log})
			engine.Register(cm, financesim.LogPlugin{Logger: log})
			c, err := engine.Compare(cmd.Context(), im, cm, s.window)
			if err != nil {
				return err
			}
			return newReporter(cmd.OutOrStdout(), viper.GetBool("output.trace")).
				comparison(viper.GetString("output.format"), c, im, cm)
		},
	}
}

func runSingle(cmd *cobra.Command, m financesim.Model, w financesim.Window) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	engine.Register(m, financesim.LogPlugin{Logger: log})
	r, err := engine.Run(cmd.Context(), m.Name(), w)
	if err != nil {
		return err
	}
	return newReporter(cmd.OutOrStdout(), viper.GetBool("output.trace")).
		single(viper.GetString("output.format"), m, r)
}

func newEngine() (*financesim.Engine, error) {
	return financesim.NewEngine(financesim.Config{
		Logger: &log,
		Roll:   financesim.RollConvention(strings.ToUpper(viper.GetString("simulation.roll"))),
	})
}
