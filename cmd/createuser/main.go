package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"movievault/proj/internal/config"
	"movievault/proj/internal/lib/logger"
	"movievault/proj/internal/services/auth"
	"movievault/proj/internal/storage/postgres"
	dbmodels "movievault/proj/internal/storage/postgres/models"

	"golang.org/x/term"
)

// Interactive user creation. There is no signup endpoint, accounts are
// provisioned from the command line.
func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Close()

	db := dbmodels.New(storage)
	authService := auth.New(log, db.Users, cfg.AppSecret, cfg.TokenTTL)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Enter email of the user")
	email, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read email:", err)
		os.Exit(1)
	}
	email = strings.TrimSpace(email)

	fmt.Println("Enter password of the user")
	password, err := readPassword(reader)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read password:", err)
		os.Exit(1)
	}

	user, err := authService.CreateUser(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create user:", err)
		os.Exit(1)
	}
	fmt.Printf("User successfully created with id #%d\n", user.ID)
}

// readPassword hides input on a real terminal and falls back to a plain
// line read when stdin is a pipe.
func readPassword(reader *bufio.Reader) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
