package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"ledgerview/internal/amqp"
	"ledgerview/internal/cli"
	"ledgerview/internal/log"
	"ledgerview/internal/storage/memory"
	"ledgerview/internal/worker"
)

func main() {
	importFile := flag.String("import", "", "publish every row of this CSV file to the ingest queue and exit")
	flag.Parse()

	cli.LoadEnvFile()
	cfg, logger := cli.LoadAndValidateConfig()
	logger = logger.WithComponent(log.ComponentAMQP)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for ingestion")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	if *importFile != "" {
		if err := publishFile(logger, amqpClient, *importFile); err != nil {
			logger.Error("Import failed", log.FieldError, err, "file", *importFile)
			os.Exit(1)
		}
		return
	}

	repo := cli.InitSQLite(logger, cfg.StoreLocation, cfg.TableName)
	defer repo.Close()

	ingest := worker.NewIngestWorker(repo, logger.WithComponent(log.ComponentWorker).Slog())
	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	logger.Info("Starting ledgerview-ingest",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue,
		log.FieldTable, cfg.TableName)

	if err := amqpClient.ConsumeTransactions(ctx, ingest.HandleTransactionMessage); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker shutdown complete")
}

// publishFile reads a statement CSV and queues each row in file order.
func publishFile(logger *log.Logger, client *amqp.Client, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	txs, err := memory.ReadCSV(f)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
		if _, err := client.PublishTransaction(ctx, tx); err != nil {
			return err
		}
	}
	logger.Info("Published statement", "file", path, log.FieldTransactions, len(txs))
	return nil
}
