// trackserver hosts a tracks context behind HTTP, a debug websocket
// feed, and optional Redis-backed snapshotting.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/bsq-ports/tracks-rs/internal/config"
	"github.com/bsq-ports/tracks-rs/internal/enginectx"
	"github.com/bsq-ports/tracks-rs/internal/httpapi"
	"github.com/bsq-ports/tracks-rs/internal/livefeed"
	"github.com/bsq-ports/tracks-rs/internal/shard"
	"github.com/bsq-ports/tracks-rs/internal/snapshot"
)

func main() {
	cfg := config.FromEnv()

	addr := flag.String("addr", cfg.HTTPAddr, "HTTP/WS bind address")
	redisAddr := flag.String("redis", cfg.RedisAddr, "Redis address (empty to disable)")
	redisPassword := flag.String("redis-password", cfg.RedisPassword, "Redis password")
	redisDB := flag.Int("redis-db", cfg.RedisDB, "Redis database number")
	defaultBPM := flag.Float64("default-bpm", float64(cfg.DefaultBPM), "BPM used to convert every event's duration")
	shardCount := flag.Int("shard-count", cfg.ShardCount, "worker shard count reported by /shard/{contextID}")
	flag.Parse()

	log.Println("==============================================")
	log.Println("  Tracks Animation Engine Server")
	log.Println("==============================================")
	log.Printf("Addr: %s", *addr)
	log.Printf("Redis: %s", *redisAddr)
	log.Printf("Default BPM: %.1f", *defaultBPM)
	log.Printf("Shard count: %d", *shardCount)
	log.Println("==============================================")

	engine := enginectx.New()
	server := httpapi.New(engine, float32(*defaultBPM))
	hub := livefeed.NewHub()
	go hub.Run()
	server.SetBroadcaster(hub)
	server.SetShardRouter(shard.New(*shardCount))

	store := snapshot.New(*redisAddr, *redisPassword, *redisDB)
	defer store.Close()
	server.SetSnapshotStore(store)

	router := mux.NewRouter()
	server.RegisterRoutes(router)
	router.HandleFunc("/ws", hub.ServeWS)

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("[SERVER] Starting HTTP server on %s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] Failed to start server: %v", err)
		}
	}()

	log.Println("[SERVER] Server started successfully")
	log.Printf("[SERVER] WebSocket endpoint: ws://%s/ws", *addr)
	log.Printf("[SERVER] REST API: http://%s/", *addr)
	log.Println("[SERVER] Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[SERVER] Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[SERVER] Error during shutdown: %v", err)
	}

	fmt.Println("[SERVER] Server stopped")
}
