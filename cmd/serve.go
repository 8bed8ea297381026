package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theyellowexpress/expressbot/internal/agent"
	"github.com/theyellowexpress/expressbot/internal/catalog"
	"github.com/theyellowexpress/expressbot/internal/chat"
	"github.com/theyellowexpress/expressbot/internal/config"
	"github.com/theyellowexpress/expressbot/internal/db"
	"github.com/theyellowexpress/expressbot/internal/llm"
	"github.com/theyellowexpress/expressbot/internal/notify"
	"github.com/theyellowexpress/expressbot/internal/orders"
	"github.com/theyellowexpress/expressbot/internal/server"
)

var serveAllowAll bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat and order API server",
	Long:  `Starts the HTTP server hosting the chat API, the chat websocket, the order and tracking API, and the WhatsApp support webhook.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		rates := cfg.Rates()
		orderStore := orders.NewStore(database)
		orderService := orders.NewService(orderStore, rates)

		// The completion fallback is optional: without an API key the bot
		// still quotes, screens and takes orders, it just cannot answer
		// open-ended questions.
		var bridge *llm.Bridge
		provider, err := llm.NewProvider(string(cfg.LLM.Provider), "")
		if err != nil {
			log.Printf("serve: completion fallback disabled: %v", err)
		} else {
			limiter := llm.NewClientLimiter(
				time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
				cfg.RateLimit.MaxRequests,
			)
			bridge = llm.NewBridge(provider, cfg.LLM.Models, limiter)
			bridge.SetSampling(cfg.LLM.MaxTokens, cfg.LLM.Temperature)
		}

		var assistant chat.Completer
		var agentAssistant agent.Completer
		if bridge != nil {
			assistant = bridge
			agentAssistant = bridge
		}

		engine := chat.NewEngine(rates, catalog.New(), orderService, assistant)
		sessions := chat.NewManager()

		transcripts := agent.NewStore(database)
		supportAgent := agent.New(orderStore, agentAssistant, transcripts, cfg.Support.WhatsApp)

		sender := notify.LogSender{}
		dispatcher := notify.NewDispatcher(sender, sender, cfg.Server.BaseURL)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: serveAllowAll || cfg.Server.AllowAllOrigins,
			Verbose:  verbose,
		}, database)

		chat.RegisterRoutes(srv.Router(), engine, sessions)
		orders.RegisterRoutes(srv.Router(), orderStore, rates, dispatcher)
		agent.RegisterRoutes(srv.Router(), supportAgent, sender, transcripts)

		// Graceful shutdown on SIGINT/SIGTERM.
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Printf("serve: received %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
