// Command admintool is the operator CLI for account maintenance. It talks to
// the same store as the server, through the same persistence layer, so the
// schema bootstrap runs here too.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"myfarm/config"
	"myfarm/internal/domain/entity"
	"myfarm/internal/domain/repository"
	"myfarm/internal/infra/auth"
	logs "myfarm/internal/infra/log"
	"myfarm/internal/infra/persistence/postgres"
	"myfarm/internal/infra/referral"

	"github.com/pkg/errors"
)

const adminFullName = "Admin User"

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (f *multiFlag) String() string { return fmt.Sprint([]string(*f)) }

func (f *multiFlag) Set(value string) error {
	*f = append(*f, value)

	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		slog.Error("admintool failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admintool <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  create --email <email> --password <password>   recreate an account")
	fmt.Fprintln(os.Stderr, "  reset --email <email> [--email <email> ...]    delete accounts")
}

func run(command string, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	txManager := postgres.NewTransactionManager(db)
	ctx := context.Background()

	switch command {
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		if err := fs.Parse(args); err != nil {
			return errors.WithStack(err)
		}
		if *email == "" || *password == "" {
			usage()

			return errors.New("create requires --email and --password")
		}

		return createAccount(ctx, cfg, logger, txManager, *email, *password)
	case "reset":
		fs := flag.NewFlagSet("reset", flag.ExitOnError)
		var emails multiFlag
		fs.Var(&emails, "email", "account email, repeatable")
		if err := fs.Parse(args); err != nil {
			return errors.WithStack(err)
		}
		if len(emails) == 0 {
			usage()

			return errors.New("reset requires at least one --email")
		}

		return resetAccounts(ctx, logger, txManager, emails)
	default:
		usage()

		return errors.Errorf("unknown command: %s", command)
	}
}

// createAccount removes any existing account with the email and creates a
// fresh one with a minimal profile, all in one transaction.
func createAccount(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	txManager repository.TransactionManager,
	email, password string,
) error {
	hasher := auth.NewBcryptHasher(cfg)
	referralGen := referral.NewGenerator()

	hashedPassword, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	referralID, err := referralGen.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate referral code")
	}

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.UserRepo().DeleteByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to delete existing account")
		}
		if deleted > 0 {
			logger.Info("Replaced existing account", slog.String("email", email))
		}

		user := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
		}
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		fullName := adminFullName
		profile := &entity.Profile{
			UserID:     user.ID,
			FullName:   &fullName,
			ReferralID: referralID,
		}

		return errors.Wrap(repoFactory.ProfileRepo().Create(ctx, profile), "failed to create profile")
	})
	if err != nil {
		return err
	}

	logger.Info("Account created", slog.String("email", email))

	return nil
}

// resetAccounts deletes each listed account. Profile and order rows go with
// the user via the cascading foreign keys.
func resetAccounts(
	ctx context.Context,
	logger *slog.Logger,
	txManager repository.TransactionManager,
	emails []string,
) error {
	return txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, email := range emails {
			deleted, err := repoFactory.UserRepo().DeleteByEmail(ctx, email)
			if err != nil {
				return errors.Wrapf(err, "failed to delete account %s", email)
			}

			if deleted == 0 {
				logger.Warn("No account with email", slog.String("email", email))
			} else {
				logger.Info("Account deleted", slog.String("email", email))
			}
		}

		return nil
	})
}
