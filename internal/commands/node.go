package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/iudanet/cashbook/internal/api"
	"github.com/iudanet/cashbook/internal/discovery"
	"github.com/iudanet/cashbook/internal/pairing"
	"github.com/iudanet/cashbook/internal/peer"
	"github.com/iudanet/cashbook/internal/rates"
	"github.com/iudanet/cashbook/internal/replication"
	"github.com/iudanet/cashbook/internal/storage/boltdb"
)

const shutdownTimeout = 5 * time.Second

// nodeOptions параметры запуска устройства.
type nodeOptions struct {
	listenAddr string
	dbPath     string
	ratesURL   string
	pairID     string
}

// runNode собирает и запускает устройство: хранилище, сессию,
// контроллер репликации, сопряжение и HTTP-сервер. Блокируется до
// отмены контекста.
func runNode(ctx context.Context, role replication.Role, opts nodeOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	store, err := boltdb.New(ctx, opts.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	doc, err := store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	ln, err := net.Listen("tcp", opts.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", opts.listenAddr, err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	mdns := discovery.NewMDNS(logger)
	defer mdns.Shutdown()

	session, err := peer.NewSession(ctx, store, mdns, logger)
	if err != nil {
		return fmt.Errorf("failed to create peer session: %w", err)
	}
	defer session.Close()

	// Без mDNS устройство продолжает работать, но другие узлы
	// не смогут найти его по идентификатору
	if err := mdns.Announce(session.LocalID(), port); err != nil {
		logger.Warn("mdns announce failed", "error", err)
	}

	ctrl := replication.New(role, doc, session, store, logger)

	pm := pairing.NewManager(session, store, pairing.DefaultReconnectDelay, logger)
	if !role.IsEditor() {
		pm.OnConnecting(ctrl.MarkConnecting)
		ctrl.Observe(pm)
	}

	go ctrl.Run(ctx)

	if role.IsEditor() {
		go func() {
			r := rates.NewClient(opts.ratesURL, logger).Fetch(ctx)
			ctrl.SetRates(ctx, r)
		}()
	} else if opts.pairID != "" {
		pm.Pair(ctx, opts.pairID)
	} else {
		go pm.AutoReconnect(ctx)
	}

	h := api.NewHandler(ctrl, pm, session, logger)
	srv := &http.Server{
		Handler:           api.NewRouter(h, session.Handler(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("device started",
		"role", string(role),
		"peer_id", session.LocalID(),
		"addr", ln.Addr().String(),
	)
	fmt.Printf("Pairing ID: %s\n", session.LocalID())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
