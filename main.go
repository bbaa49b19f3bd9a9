package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gardet/listing-finder/pkg/catalog"
	"github.com/gardet/listing-finder/pkg/common"
	"github.com/gardet/listing-finder/pkg/messaging"
	"github.com/gardet/listing-finder/pkg/server"
	"github.com/gardet/listing-finder/pkg/tracking"
	"github.com/gardet/listing-finder/pkg/types"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")

var listenAddress = ":8080"
var debugAddress = ":8081"

var store = catalog.NewStore()

var srv = server.WebServer{
	Store: store,
}

var done = false

func makeSource() catalog.Source {
	if baseUrl := os.Getenv("CATALOG_URL"); baseUrl != "" {
		return catalog.NewHTTPSource(baseUrl)
	}
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return &catalog.FileSource{Dir: dir}
}

func applyEnvSettings() {
	update := types.Settings{}
	if v := os.Getenv("UF_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			update.UFRate = rate
		} else {
			log.Printf("ignoring invalid UF_RATE %q", v)
		}
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			update.PageSize = size
		}
	}
	update.WhatsAppPhone = os.Getenv("WHATSAPP_PHONE")
	update.ContactPage = os.Getenv("CONTACT_PAGE")
	types.CurrentSettings.Update(update)
}

func loadCatalog() {
	src := makeSource()
	srv.Source = src

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := store.Load(ctx, src); err != nil {
		// terminal until an operator reload succeeds, request handlers
		// surface the error state
		log.Printf("Failed to load catalog: %v", err)
	} else {
		srv.RefreshSuggestions()
	}
	done = true
}

func main() {
	flag.Parse()
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	applyEnvSettings()

	if addr := os.Getenv("LISTEN_ADDRESS"); addr != "" {
		listenAddress = addr
	}
	if addr := os.Getenv("DEBUG_ADDRESS"); addr != "" {
		debugAddress = addr
	}
	srv.AdminSecret = os.Getenv("ADMIN_SECRET")

	if redisUrl := os.Getenv("REDIS_URL"); redisUrl != "" {
		srv.Cache = server.NewCache(redisUrl, os.Getenv("REDIS_PASSWORD"), 0)
		log.Printf("Response cache enabled, url: %s", redisUrl)
	}

	if rabbitUrl := os.Getenv("RABBIT_URL"); rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
		leads, err := messaging.NewLeadSender(rabbitUrl)
		if err != nil {
			log.Fatalf("Failed to create lead sender: %v", err)
		}
		srv.Leads = leads
	}

	loadCatalog()

	mux := http.NewServeMux()
	mux.Handle("/admin/", http.StripPrefix("/admin", srv.AdminHandler()))
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !done {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	go func() {
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	apiServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)
	common.RunServerWithShutdown(apiServer, "listing api", timeouts.Shutdown, timeouts.Hook, func(ctx context.Context) error {
		if srv.Cache != nil {
			srv.Cache.Close()
		}
		return nil
	})
}
