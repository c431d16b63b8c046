// Command pos-service runs the point-of-sale API: catalog and stock, checkout,
// the kitchen queue and the admin reports.
//
// @title           POS Service API
// @version         1.0
// @description     Point-of-sale backend: products, transactions, kitchen status and reports.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/config"
	"github.com/MikeMC777/pos-service/internal/health"
)

func main() {
	probe := flag.Bool("probe", false, "check the gRPC health endpoint and exit")
	flag.Parse()

	cfg := config.Load()
	if *probe {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := health.Probe(ctx, dialAddr(cfg.GRPCAddr)); err != nil {
			log.Fatalf("[pos] probe: %v", err)
		}
		return
	}
	gin.SetMode(cfg.GinMode)

	products, txs, users, err := seedStores(cfg)
	if err != nil {
		log.Fatalf("[pos] %v", err)
	}
	router := newRouter(newServices(cfg, products, txs, users))

	hs := health.NewServer()
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("[pos] grpc listen: %v", err)
	}
	go func() {
		log.Printf("[pos] grpc health listening on %s", cfg.GRPCAddr)
		if err := hs.Serve(lis); err != nil {
			log.Printf("[pos] grpc: %v", err)
		}
	}()

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Printf("[pos] http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[pos] http: %v", err)
		}
	}()
	hs.Serving(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("[pos] shutting down")
	hs.Serving(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[pos] http shutdown: %v", err)
	}
	hs.Stop()
}

// dialAddr turns a listen address like ":50051" into one a client can dial.
func dialAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
