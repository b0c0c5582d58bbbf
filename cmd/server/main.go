package main

import (
	"encoding/hex"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openkita/finance/pkg/acquire"
	"github.com/openkita/finance/pkg/ingest"
	"github.com/openkita/finance/pkg/knowniban"
	"github.com/openkita/finance/pkg/matcher"
	"github.com/openkita/finance/pkg/notify"
	"github.com/openkita/finance/pkg/reconcile"
	"github.com/openkita/finance/pkg/repo"
	"github.com/openkita/finance/pkg/secrets"
	"github.com/openkita/finance/pkg/syncer"
	"github.com/openkita/finance/pkg/upload"
	"github.com/openkita/finance/pkg/warning"
)

func main() {
	_ = godotenv.Load()

	db, err := repo.Open(os.Getenv("POSTGRES_CONNECTION_STRING"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	dataRepo := repo.NewPostgres(db)
	if err = dataRepo.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	key, err := hex.DecodeString(os.Getenv("SECRET_KEY"))
	if err != nil {
		log.Fatal().Err(err).Msg("SECRET_KEY must be hex encoded")
	}

	cipher, err := secrets.NewSecretBox(key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build cipher")
	}

	registry := knowniban.NewRegistry(dataRepo)
	warnings := warning.NewGenerator(dataRepo)

	matchEngine, err := matcher.NewEngine(dataRepo, warnings, matcher.Config{
		MemberIDPattern: os.Getenv("MEMBER_ID_PATTERN"),
		NameSimilarity:  envFloat("NAME_SIMILARITY"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build matching engine")
	}

	pipeline := ingest.NewPipeline(dataRepo, matchEngine)

	var notifier syncer.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, parseErr := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Msg("TELEGRAM_CHAT_ID must be numeric")
		}

		notifier = notify.NewTelegram(token, chatID, req.DefaultClient())
	}

	syncSvc := syncer.NewSyncer(
		dataRepo,
		registry,
		pipeline,
		cipher,
		map[string]acquire.Adapter{
			acquire.AdapterGateway: acquire.NewGatewayClient(req.DefaultClient()),
			acquire.AdapterBrowser: acquire.NewBrowserBridge(req.DefaultClient(),
				os.Getenv("BROWSER_BRIDGE_URL")),
		},
		notifier,
	)

	uploadSvc := upload.NewImporter(dataRepo, registry, pipeline, []upload.FormatSpec{
		upload.SparkasseCSV(),
	})

	reconcileSvc := reconcile.NewService(dataRepo, matchEngine, registry, warnings)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
			next.ServeHTTP(w, request.WithContext(logger.WithContext(request.Context())))
		})
	})

	handler := NewHandler(reconcileSvc, registry, syncSvc, uploadSvc, os.Getenv("API_KEY"))
	handler.Register(r)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", listenAddr).Msg("listening")

	panic(srv.ListenAndServe())
}

func envFloat(name string) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s must be a float", name)
	}

	return value
}
