package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/mannancrackers/shop/app/cmd"
	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/routes"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys: %v. Run `shop generate-keys` and copy the output to .env.", err)
	}
	log.Println("✅ Session store initialized.")

	router, err := routes.NewRouter(db, env, keys)
	if err != nil {
		log.Fatal("Router setup failed:", err)
	}

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("🚀 The Mannan Crackers server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
