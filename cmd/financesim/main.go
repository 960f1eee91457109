package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riskmanagement123/financesim/internal/logger"
)

var (
	cfgFile string
	version = "dev"
	log     = zerolog.Nop()
	rootCmd = &cobra.Command{
		Use:   "financesim",
		Short: "Compare profit-sharing and fixed-interest financing of a small business",
		Long: `financesim runs a month-by-month viability simulation of a small business
financed either by a Mudarabah (profit and loss sharing) bank or by a
conventional compound-interest bank, and reports which one the business survives.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario file (default: ./financesim.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-pretty", true, "human readable log output")
	rootCmd.PersistentFlags().Int("time-period", 0, "months to simulate (overrides simulation.time_period)")
	rootCmd.PersistentFlags().Int("grace-period", -1, "months of tolerated losses (overrides simulation.grace_period)")
	rootCmd.PersistentFlags().StringP("format", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().Bool("trace", false, "print the month by month table")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output.trace", rootCmd.PersistentFlags().Lookup("trace"))

	setDefaults(viper.GetViper())

	rootCmd.AddCommand(islamicCmd())
	rootCmd.AddCommand(conventionalCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// .env 不存在不算错误
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("financesim")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FINANCESIM")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if tp, _ := cmd.Flags().GetInt("time-period"); cmd.Flags().Changed("time-period") {
		viper.Set("simulation.time_period", tp)
	}
	if gp, _ := cmd.Flags().GetInt("grace-period"); cmd.Flags().Changed("grace-period") {
		viper.Set("simulation.grace_period", gp)
	}

	log = logger.New(logger.Config{
		Level:  viper.GetString("logging.level"),
		Pretty: viper.GetBool("logging.pretty"),
	})
	logger.SetGlobalLogger(log)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "financesim %s\n", version)
		},
	}
}
