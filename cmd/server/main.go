package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "worldseed/internal/adapter/http"
	metricsinmem "worldseed/internal/adapter/metrics/inmemory"
	"worldseed/internal/adapter/render"
	gormrepo "worldseed/internal/adapter/repo/gorm"
	memrepo "worldseed/internal/adapter/repo/memory"
	"worldseed/internal/app/export"
	"worldseed/internal/app/generate"
	"worldseed/internal/app/ports"
	"worldseed/internal/app/simulate"
	"worldseed/internal/app/worldview"
	"worldseed/internal/domain/terrain"
	"worldseed/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	worlds, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()

	defaults := defaultsFromEnv()
	if err := defaults.Validate(); err != nil {
		log.Fatalf("invalid generation defaults: %v", err)
	}

	h := httpadapter.Handler{
		GenerateUC: generate.UseCase{
			TxManager: txManager,
			Worlds:    worlds,
			Metrics:   kpiRecorder,
			Now:       func() time.Time { return time.Now().UTC() },
		},
		WorldsUC:   worldview.UseCase{Worlds: worlds},
		ExportUC:   export.UseCase{Worlds: worlds, Renderer: render.NewRenderer()},
		SimulateUC: simulate.UseCase{},
		KPI:        kpiRecorder,
		Defaults:   defaults,
	}

	addr := addrEnv()
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("worldseed server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.WorldRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("WORLDSEED_DB_DSN"))
	if dsn == "" {
		log.Println("WORLDSEED_DB_DSN not set, worlds are kept in memory only")
		store := memrepo.NewStore()
		return memrepo.NewWorldRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if boolEnv("WORLDSEED_AUTO_MIGRATE", true) {
		if err := gormrepo.ApplyMigrations(context.Background(), db, migrations.Files); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewWorldRepo(db), gormrepo.NewTxManager(db)
}

func defaultsFromEnv() terrain.Options {
	opts := terrain.DefaultOptions()
	opts.ElevationDensity = floatEnv("WORLDSEED_ELEVATION_DENSITY", opts.ElevationDensity)
	opts.ElevationIterations = intEnv("WORLDSEED_ELEVATION_ITERATIONS", opts.ElevationIterations)
	opts.WaterThreshold = intEnv("WORLDSEED_WATER_THRESHOLD", opts.WaterThreshold)
	opts.SettlementDensity = floatEnv("WORLDSEED_SETTLEMENT_DENSITY", opts.SettlementDensity)
	opts.FeatureDensity = floatEnv("WORLDSEED_FEATURE_DENSITY", opts.FeatureDensity)
	if style := strings.TrimSpace(os.Getenv("WORLDSEED_STYLE")); style != "" {
		opts.Style = terrain.Style(style)
	}
	return opts
}

func addrEnv() string {
	if addr := strings.TrimSpace(os.Getenv("WORLDSEED_ADDR")); addr != "" {
		return addr
	}
	return ":8080"
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
