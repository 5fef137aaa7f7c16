package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restaurantx/tableside/internal/logging"
	"github.com/restaurantx/tableside/internal/models"
	"github.com/restaurantx/tableside/internal/simulator"
)

var (
	cfgFile  string
	menuFile string
)

var rootCmd = &cobra.Command{
	Use:   "tableside",
	Short: "Runs a simulated dine-in session for the RestauranteX demo",
	Long: `tableside drives the restaurant front-of-house demo: guests browse the
menu, build carts, place orders with a cancellation window, call waiters and
settle their bills. Every lifecycle event is emitted as JSON to the console,
to per-topic files, or to Kafka.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		room := simulator.New(cfg)
		if err := room.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			os.Exit(1)
		}
	},
}

func mustLoadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if menuFile != "" {
		if err := cfg.LoadExtraDishes(menuFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading menu file: %v\n", err)
			os.Exit(1)
		}
	}
	return cfg
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tableside.yaml)")
	rootCmd.PersistentFlags().StringVar(&menuFile, "menu-file", "", "CSV file with extra dishes (name,category,price)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.Flags().Int("seed", 42, "Random seed for the session")
	rootCmd.Flags().String("restaurant-name", "Restaurante Gastronômico", "Restaurant display name")
	rootCmd.Flags().Int("table-count", 20, "Number of tables in the dining room")
	rootCmd.Flags().Float64("surcharge-per-addition", 5.00, "Flat surcharge charged per addition")
	rootCmd.Flags().Duration("confirmation-window", 10*time.Second, "How long a guest can cancel a placed order")
	rootCmd.Flags().Float64("service-fee-percentage", 0.10, "Service fee applied at bill display")
	rootCmd.Flags().Duration("session-duration", 2*time.Minute, "How long the simulated session runs")
	rootCmd.Flags().Float64("guest-arrival-rate", 0.3, "Chance per second that a new party is seated")
	rootCmd.Flags().Float64("cancel-probability", 0.25, "Chance a guest tries to cancel a placed order")
	rootCmd.Flags().Float64("waiter-call-rate", 0.15, "Chance a guest calls the waiter after ordering")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-file", "", "Output folder for per-topic event files (if not using Kafka)")
	rootCmd.Flags().String("menu-base-url", "https://restaurante.com", "Base URL encoded in table QR codes")
	rootCmd.Flags().String("qr-output-folder", "qrcodes", "Folder the qrcodes command writes PNGs into")

	flags := rootCmd.Flags()
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("restaurant_name", flags.Lookup("restaurant-name"))
	viper.BindPFlag("table_count", flags.Lookup("table-count"))
	viper.BindPFlag("surcharge_per_addition", flags.Lookup("surcharge-per-addition"))
	viper.BindPFlag("confirmation_window", flags.Lookup("confirmation-window"))
	viper.BindPFlag("service_fee_percentage", flags.Lookup("service-fee-percentage"))
	viper.BindPFlag("session_duration", flags.Lookup("session-duration"))
	viper.BindPFlag("guest_arrival_rate", flags.Lookup("guest-arrival-rate"))
	viper.BindPFlag("cancel_probability", flags.Lookup("cancel-probability"))
	viper.BindPFlag("waiter_call_rate", flags.Lookup("waiter-call-rate"))
	viper.BindPFlag("kafka_enabled", flags.Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", flags.Lookup("kafka-broker-list"))
	viper.BindPFlag("output_file_path", flags.Lookup("output-file"))
	viper.BindPFlag("menu_base_url", flags.Lookup("menu-base-url"))
	viper.BindPFlag("qr_output_folder", flags.Lookup("qr-output-folder"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tableside")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	logging.Init(viper.GetBool("debug"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
