package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name             string
	Port             string
	Debug            bool
	LogPath          string
	TimezoneOffsetMin int // fixed operating timezone, minutes east of UTC
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// PricingConfig carries per-service base prices in minor currency units.
type PricingConfig struct {
	MobileChargingBase int64
	PickupChargingBase int64
	RoadsideAssistBase int64
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TZ_OFFSET_MINUTES", 240) // UTC+4
	viper.SetDefault("PRICE_MOBILE_CHARGING", 10000)
	viper.SetDefault("PRICE_PICKUP_CHARGING", 15000)
	viper.SetDefault("PRICE_ROADSIDE_ASSIST", 20000)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:              viper.GetString("APP_NAME"),
			Port:              viper.GetString("PORT"),
			Debug:             viper.GetBool("DEBUG"),
			LogPath:           viper.GetString("LOG_PATH"),
			TimezoneOffsetMin: viper.GetInt("TZ_OFFSET_MINUTES"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Pricing: PricingConfig{
			MobileChargingBase: viper.GetInt64("PRICE_MOBILE_CHARGING"),
			PickupChargingBase: viper.GetInt64("PRICE_PICKUP_CHARGING"),
			RoadsideAssistBase: viper.GetInt64("PRICE_ROADSIDE_ASSIST"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
	}

	return config, nil
}
