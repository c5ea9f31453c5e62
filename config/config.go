package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("appName", "campustrack")
	Conf.SetDefault("dbPath", "data/attendance.db")
	Conf.SetDefault("logLevel", "info")
	Conf.SetDefault("logPretty", true)
	Conf.SetDefault("backupEnabled", false)
	Conf.SetDefault("b2KeyId", "")
	Conf.SetDefault("b2AppKey", "")
	Conf.SetDefault("b2Bucket", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(.env): %v", err)
	}

	Conf.SetEnvPrefix("CAMPUSTRACK")
	Conf.AutomaticEnv()
}
