package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	apiconfig "shareholder_catalyst/pkg/api/config"
	"shareholder_catalyst/pkg/api/research"
	"shareholder_catalyst/pkg/core/config"
	"shareholder_catalyst/pkg/core/orchestrator"
	"shareholder_catalyst/pkg/core/prompt"
	"shareholder_catalyst/pkg/core/store"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load("config/catalyst.yaml")
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	// Built-in prompts first, then optional overrides from resources/.
	prompt.EnsureBuiltins()
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[PROMPT] no prompt overrides loaded: %v\n", err)
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	ctx := context.Background()
	o := orchestrator.New(ctx, cfg)
	defer store.Close()

	handler := research.NewHandler(o)
	http.HandleFunc("/api/research", handler.HandleResearch)
	http.HandleFunc("/api/health", handler.HandleHealth)

	configHandler := apiconfig.NewHandler(o.AgentManager())
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/research  {\"ticker\": \"AAPL\"}")
	fmt.Println("  - GET  /api/health")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	if !cfg.HasExtractionCredential() {
		fmt.Println("  [WARNING] GEMINI_API_KEY not set: requests will return demo data")
	}

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
