package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketcounter/db"
	"ticketcounter/globals"
	"ticketcounter/ratelim"
	"ticketcounter/routes"
	"ticketcounter/stripe"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is the liveness check.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "Hello Ticket Counter App")
}

func setupRouter(store *db.Store, processor *stripe.Client, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/", Index)

	routes.AddAuthRoutes(router, rateLimiter)
	routes.AddUserRoutes(router, rateLimiter, store)
	routes.AddEventRoutes(router, store)
	routes.AddBookingRoutes(router, rateLimiter, store)
	routes.AddPayRoutes(router, store, processor)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	if secret := os.Getenv("ACCESS_TOKEN"); secret != "" {
		globals.JwtSecret = []byte(secret)
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3001"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, db.URIFromEnv())
	cancel()
	if err != nil {
		log.Fatalf("❌ Invalid MongoDB configuration: %v", err)
	}
	// The driver connects lazily; a dead server only shows up here. The
	// process stays up either way and requests fail against the store.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Client.Ping(pingCtx, nil); err != nil {
		log.Println("MongoDB ping failed; continuing with an unverified connection:", err)
	}
	pingCancel()

	processor := stripe.NewClient(os.Getenv("STRIPE_SECRET_KEY"))
	rateLimiter := ratelim.NewRateLimiter()

	router := setupRouter(store, processor, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}
	if err := store.Client.Disconnect(shutdownCtx); err != nil {
		log.Println("MongoDB disconnect:", err)
	}

	log.Println("✅ Server stopped cleanly")
}
