package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/client"
	"github.com/dmitrijs2005/ecoscan/internal/client/config"
	"github.com/dmitrijs2005/ecoscan/internal/client/services"
	"github.com/dmitrijs2005/ecoscan/internal/filex"
	"github.com/dmitrijs2005/ecoscan/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	session  *services.SessionService
	workflow *services.UploadWorkflow
	history  services.HistoryService
	api      *client.GRPCClient
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dataDir, err := filex.EnsureSubdDir("data")
	if err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, filepath.Join(dataDir, c.DatabaseDSN))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewEcoScanClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	session := services.NewSessionService(apiClient, repos.DB, logger)
	history := services.NewHistoryService(repos.Records)

	workflow := services.NewUploadWorkflow(
		client.NewPresignImageStore(apiClient),
		apiClient,
		session,
		history,
		logger,
	)
	workflow.SetCallTimeout(c.UploadTimeout)

	return &App{
		config:   c,
		session:  session,
		workflow: workflow,
		history:  history,
		api:      apiClient,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	log.Println("Welcome to EcoScan CLI (type 'help' for commands)")

	if sess := a.session.Restore(ctx); sess != nil {
		a.api.SetAccessToken(sess.Token)
		log.Printf("Restored session for %s\n", sess.Identity.Email)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	s := ""
	if sess := a.session.Current(); sess != nil {
		s = sess.Identity.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode) + " "
	}
	return s + string(a.workflow.State())
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
