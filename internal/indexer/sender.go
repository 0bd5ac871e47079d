package indexer

import (
	"context"
	"fmt"
	"time"

	"algowoo/internal/logger"
	"algowoo/internal/metrics"
	"algowoo/internal/models"

	"github.com/google/uuid"
)

// DefaultBatchSize matches the batch size recommended for saveObjects.
const DefaultBatchSize = 1000

// Report summarises one send run.
type Report struct {
	RunID     string        `json:"run_id"`
	IndexName string        `json:"index_name"`
	Products  int           `json:"products"`
	Batches   int           `json:"batches"`
	Duration  time.Duration `json:"duration"`
}

// Sender maps products and submits them to an index in batches.
type Sender struct {
	batchSize int
	logger    *logger.Logger
}

func NewSender(batchSize int, logger *logger.Logger) *Sender {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Sender{
		batchSize: batchSize,
		logger:    logger,
	}
}

// Send maps every product with mapper and saves the documents to indexName,
// one SaveObjects call per batch. The first failing batch aborts the run.
func (s *Sender) Send(ctx context.Context, client IndexClient, indexName string, mapper *Mapper, products []*models.Product) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:     uuid.New().String(),
		IndexName: indexName,
	}
	log := s.logger.With(map[string]interface{}{"run_id": report.RunID, "index": indexName})

	docs := make([]Document, 0, len(products))
	for _, p := range products {
		docs = append(docs, mapper.Map(p))
	}

	for offset := 0; offset < len(docs); offset += s.batchSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := offset + s.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[offset:end]

		if err := client.SaveObjects(ctx, indexName, batch); err != nil {
			metrics.Batches.WithLabelValues(indexName, "error").Inc()
			log.Error("Failed to save batch %d (%d documents): %v", report.Batches+1, len(batch), err)
			report.Duration = time.Since(start)
			return report, fmt.Errorf("failed to save batch %d: %w", report.Batches+1, err)
		}

		report.Batches++
		report.Products += len(batch)
		metrics.Batches.WithLabelValues(indexName, "ok").Inc()
		metrics.DocumentsSent.WithLabelValues(indexName).Add(float64(len(batch)))
		log.Debug("Saved batch %d with %d documents", report.Batches, len(batch))
	}

	report.Duration = time.Since(start)
	log.Info("Sent %d products in %d batches", report.Products, report.Batches)
	return report, nil
}
