package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/server"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/store"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "Listen address")
		dbPath  = flag.String("db", "./reports.db", "SQLite database path")
		baseURL = flag.String("public-base-url", "http://localhost:8080", "Public origin used in result links")
	)
	flag.Parse()

	if strings.TrimSpace(*baseURL) == "" {
		log.Fatal("--public-base-url is required")
	}

	catalog, err := scoring.NewCatalog()
	if err != nil {
		log.Fatalf("load question catalog: %v", err)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open report store: %v", err)
	}
	defer st.Close()

	listID := 0
	if raw := strings.TrimSpace(os.Getenv("BREVO_LIST_ID")); raw != "" {
		listID, err = strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("invalid BREVO_LIST_ID %q: %v", raw, err)
		}
	}
	crm := server.NewCRMClient(os.Getenv("BREVO_API_KEY"), listID)
	if crm == nil {
		log.Print("BREVO_API_KEY not set, CRM sync disabled")
	}

	handler, _, err := server.NewServer(st, catalog, crm, *baseURL)
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Printf("profile server listening on %s (db=%s)", *addr, *dbPath)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
