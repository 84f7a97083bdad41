package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/uniaodigital/learnhub/internal/census"
	"github.com/uniaodigital/learnhub/internal/config"
	"github.com/uniaodigital/learnhub/internal/filex"
	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/quiz"
	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/session"
	"github.com/uniaodigital/learnhub/internal/stats"
	"github.com/uniaodigital/learnhub/internal/store"
	"github.com/uniaodigital/learnhub/internal/users"
)

const (
	usersFile     = "users.json"
	locationsFile = "locations.json"
	statsFile     = "statistics.json"
)

// App is the interactive console application.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	courses []quiz.Quiz
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires stores, services, and the session from the given config.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	secret := security.AdminSecret(cfg.AdminSecret)

	c := census.New(store.New[census.Document](filepath.Join(dataDir, locationsFile), log), log)
	ledger := stats.New(store.New[stats.Document](filepath.Join(dataDir, statsFile), log), log)
	directory := users.NewDirectory(
		store.New[users.Document](filepath.Join(dataDir, usersFile), log),
		security.NewArgon2Hasher(),
		c,
		secret,
		log,
	)

	return &App{
		config:  cfg,
		log:     log,
		session: session.New(directory, ledger, c, secret, log),
		courses: quiz.Courses(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// pause waits for Enter so the operator can read the current screen.
func (a *App) pause() {
	fmt.Fprint(a.out, "\nPress Enter to continue.")
	_, _ = a.reader.ReadString('\n')
}
