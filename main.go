package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/harshitaS19/Student-Attendance-management-System/config"
	"github.com/harshitaS19/Student-Attendance-management-System/database"
	"github.com/harshitaS19/Student-Attendance-management-System/helper"
	"github.com/harshitaS19/Student-Attendance-management-System/storage"
)

func main() {
	lgr := newLogger()

	store, err := database.Init(config.Conf.GetString("dbPath"), lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("failed to init database")
	}
	defer store.Close()

	if config.Conf.GetBool("backupEnabled") {
		ctx := context.Background()

		b2store, err := storage.Init(
			ctx,
			config.Conf.GetString("b2KeyId"),
			config.Conf.GetString("b2AppKey"),
			config.Conf.GetString("b2Bucket"),
		)
		if err != nil {
			lgr.Fatal().Err(err).Msg("failed to init backup storage")
		}

		key := "attendance-" + helper.Day(time.Now()) + ".db"
		if err := b2store.UploadSnapshot(ctx, key, store); err != nil {
			lgr.Fatal().Err(err).Msg("failed to upload snapshot")
		}
		lgr.Info().Str("key", key).Msg("snapshot uploaded")
	}
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Conf.GetString("logLevel"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if config.Conf.GetBool("logPretty") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().Timestamp().Logger()
}
