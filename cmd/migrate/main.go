package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"time"

	"civic-hub/internal/pkg/config"
	"civic-hub/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

// Applies or inspects the versioned migrations under -dir with the atlas
// binary. The directory needs an atlas.sum (`atlas migrate hash`).
func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [flags] apply|status\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := run(ctx, flag.Arg(0), *dir, *bin, databaseURL(dbCfg)); err != nil {
		slog.Error("migration failed", "command", flag.Arg(0), "error", err, "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dir, bin, dbURL string) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "prepare working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	switch command {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dbURL})
		if err != nil {
			return errs.Wrap(err, "migrate apply")
		}
		slog.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dbURL})
		if err != nil {
			return errs.Wrap(err, "migrate status")
		}
		slog.Info("migration status", "status", res.Status, "current", res.Current, "next", res.Next, "pending", len(res.Pending))
	default:
		return errs.Newf("unknown command %q", command)
	}
	return nil
}

// Atlas rejects driver-only parameters such as timezone.
func databaseURL(db config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     "/" + db.DBName,
		RawQuery: url.Values{"sslmode": []string{db.SSLMode}}.Encode(),
	}
	return u.String()
}
