package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imobsites/crm-board/internal/board"
	"github.com/imobsites/crm-board/internal/entity"
	"github.com/imobsites/crm-board/internal/infra/cache/sqlite"
	"github.com/imobsites/crm-board/internal/infra/http/handlers"
	"github.com/imobsites/crm-board/internal/infra/http/middleware"
	"github.com/imobsites/crm-board/internal/infra/integration/clientes"
	"github.com/imobsites/crm-board/internal/infra/mail"
	"github.com/imobsites/crm-board/internal/infra/queue"
	"github.com/imobsites/crm-board/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Cache local da ordenação
	cachePath := os.Getenv("CACHE_DB_PATH")
	if cachePath == "" {
		cachePath = "board.db"
	}
	cache, err := sqlite.New(cachePath)
	if err != nil {
		log.Fatal(err)
	}
	defer cache.Close()

	// 2. Serviço de clientes (colaborador externo)
	clientesURL := os.Getenv("CLIENTES_API_URL")
	if clientesURL == "" {
		log.Fatal("❌ CLIENTES_API_URL deve estar configurado")
	}
	clientesClient := clientes.NewClient(clientesURL)

	// 3. Persistência remota: via fila quando o RabbitMQ está
	// configurado, direto no HTTP quando não está.
	var persister usecase.OrderPersister = clientesClient
	var rabbitConn *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ

		persister = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// Worker consome a fila e chama o POST /api/clientes de verdade
		worker := queue.NewWorker(rabbitMQ.Ch, clientesClient)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RabbitMQ não configurado; ordenação será persistida direto no HTTP")
	}

	// 4. Notificação de visita (opcional)
	storeOpts := []board.StoreOption{
		board.WithReconcileHook(func(int) { middleware.RecordReconciliation() }),
	}
	if mailHost := os.Getenv("MAIL_HOST"); mailHost != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender := mail.NewEmailSender(mailHost, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))
		corretores := os.Getenv("CORRETORES_EMAIL")

		storeOpts = append(storeOpts, board.WithVisitAlert(func(lead entity.Lead) {
			go func() {
				if err := mailSender.SendVisitAlert(corretores, lead); err != nil {
					log.Printf("⚠️ Falha ao enviar alerta de visita: %v", err)
				}
			}()
		}))
	}

	// 5. Motor do quadro
	outbox := board.NewOutbox(cache, persister, board.WithErrorHook(func(stage string, err error) {
		middleware.RecordPersistenceError(stage)
	}))
	store := board.NewStore(outbox, storeOpts...)
	loader := board.NewLoader(store, clientesClient, cache)

	// Cargas de montagem: leads e ordenação correm em paralelo; o
	// quadro só reconcilia quando as duas terminam.
	go func() {
		if err := loader.Mount(context.Background()); err != nil {
			log.Printf("⚠️ Carga inicial incompleta: %v", err)
		}
	}()

	// 6. Handlers
	boardHandler := handlers.NewBoardHandler(store, loader)
	healthHandler := handlers.NewHealthHandler(cache, nil)
	if rabbitConn != nil {
		healthHandler = handlers.NewHealthHandler(cache, rabbitConn.Conn)
	}

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/board", boardHandler.HandleGetBoard)
	r.Get("/board/colunas/{coluna}", boardHandler.HandleGetColumn)
	r.Post("/board/move", boardHandler.HandleMove)
	r.Post("/board/refresh", boardHandler.HandleRefresh)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Board CRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
