package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ExtraDish is a menu entry loaded from a CSV file on top of the built-in
// house menu.
type ExtraDish struct {
	Name     string  `mapstructure:"name"`
	Category string  `mapstructure:"category"`
	Price    float64 `mapstructure:"price"`
}

type Config struct {
	Seed           int    `mapstructure:"seed"`
	RestaurantName string `mapstructure:"restaurant_name"`
	TableCount     int    `mapstructure:"table_count"`

	// Core pricing and lifecycle knobs. The surcharge is a flat amount per
	// addition regardless of which addition; removals are free. The service
	// fee is applied at bill display only and is never stored on an order.
	SurchargePerAddition float64       `mapstructure:"surcharge_per_addition"`
	ConfirmationWindow   time.Duration `mapstructure:"confirmation_window"`
	ServiceFeePercentage float64       `mapstructure:"service_fee_percentage"`

	// Dining-room simulation.
	SessionDuration   time.Duration `mapstructure:"session_duration"`
	GuestArrivalRate  float64       `mapstructure:"guest_arrival_rate"`
	CancelProbability float64       `mapstructure:"cancel_probability"`
	WaiterCallRate    float64       `mapstructure:"waiter_call_rate"`

	// Output destinations for the simulator event feed.
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	OutputFile      string `mapstructure:"output_file_path"`

	// QR code generation.
	MenuBaseURL    string `mapstructure:"menu_base_url"`
	QROutputFolder string `mapstructure:"qr_output_folder"`

	ExtraDishes []ExtraDish `mapstructure:"extra_dishes"`
}

// Surcharge returns the per-addition surcharge in minor units.
func (cfg *Config) Surcharge() Money {
	return NewMoneyFromFloat(cfg.SurchargePerAddition)
}

// LoadConfig initializes and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// LoadExtraDishes reads additional menu entries from a CSV file with
// name, category and price columns. The first row is a header.
func (cfg *Config) LoadExtraDishes(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Read()

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("bad price for dish %q: %w", fields[0], err)
		}
		cfg.ExtraDishes = append(cfg.ExtraDishes, ExtraDish{
			Name:     fields[0],
			Category: fields[1],
			Price:    price,
		})
	}

	return nil
}
