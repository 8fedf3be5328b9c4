package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"staff/backend/foundation/web"
	"staff/backend/internal/commands"
	"staff/backend/internal/pkg/config"
	"staff/backend/internal/pkg/repository/postgresql"
	"staff/backend/internal/router"
)

var build = "develop"

func main() {
	if err := run(); err != nil {
		log.Fatalln("startup:", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfgFlags := struct {
		conf.Version
		Web struct {
			Port string `conf:"default:8080"`
		}
		Migrate bool `conf:"default:true"`
	}{
		Version: conf.Version{
			SVN:  build,
			Desc: "staff directory service",
		},
	}

	if err := conf.Parse(os.Args[1:], "STAFF", &cfgFlags); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage("STAFF", &cfgFlags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString("STAFF", &cfgFlags)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewConnection(cfg)
	defer postgresDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := postgresDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "connecting to database")
	}

	if cfgFlags.Migrate {
		commands.MigrateUP(postgresDB)
	}

	app := web.NewApp()
	r := router.NewRouter(app, postgresDB, ":"+cfgFlags.Web.Port, cfg.CORSAllowedOrigins)

	log.Println("starting api on port", cfgFlags.Web.Port)

	return r.Init()
}
