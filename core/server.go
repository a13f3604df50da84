package core

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/config"
	"github.com/PhilCANDIDO/ACM-repo/core/handlers"
	"github.com/PhilCANDIDO/ACM-repo/core/store"
	"github.com/PhilCANDIDO/ACM-repo/core/topology"
	"github.com/gorilla/mux"
)

func StartServer() {
	cfg := config.Load()

	log.Printf("[Server] Local node id: %d, minimum members: %d", cfg.Cluster.LocalNodeID, cfg.Cluster.MinimumMembers)

	auditStore, err := store.NewSQLiteStore(cfg.Audit.DBPath)
	if err != nil {
		log.Fatalf("[Server] Failed to initialize audit store: %v", err)
	}
	defer auditStore.Close()

	resolver := topology.NewResolver()
	resolver.MinimumMembers = cfg.Cluster.MinimumMembers

	handler := handlers.NewHandler(cfg, resolver, auditStore)

	routes := NewRoutes(handler)

	httpServerReliableStart(cfg.Server.Host, cfg.Server.Port, routes.Router)
}

func httpServerReliableStart(address, port string, router *mux.Router) {
	addr := fmt.Sprintf("%s:%s", address, port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP Server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
