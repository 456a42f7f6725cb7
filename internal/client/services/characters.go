package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/iceandfire/internal/client/client"
	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/client/repositories/characters"
	"github.com/dmitrijs2005/iceandfire/internal/dbx"
	"github.com/dmitrijs2005/iceandfire/internal/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dmitrijs2005/iceandfire/internal/client/services"

// CharacterService runs the refresh sequence behind the characters screen.
type CharacterService interface {
	// Load opens the store, ensures the schema, fetches every configured
	// character, replaces the cached rows and reads them back. It never
	// panics or returns partially: failures come back as a tagged Result.
	Load(ctx context.Context) Result

	// Close releases the store handle, if one was opened.
	Close() error
}

// Opener opens the local store.
type Opener func(ctx context.Context) (*sql.DB, error)

// RepositoryFactory builds a character repository over a connection or
// transaction.
type RepositoryFactory func(db dbx.DBTX) characters.Repository

func sqliteRepository(db dbx.DBTX) characters.Repository {
	return characters.NewSQLiteRepository(db)
}

type Option func(*characterService)

// WithRepository overrides the store repository.
func WithRepository(f RepositoryFactory) Option {
	return func(s *characterService) {
		s.repo = f
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *characterService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

type characterService struct {
	open   Opener
	client client.Client
	urls   []string
	log    logging.Logger
	tracer trace.Tracer
	repo   RepositoryFactory

	mu sync.Mutex
	db *sql.DB
}

func NewCharacterService(open Opener, c client.Client, urls []string, log logging.Logger, opts ...Option) CharacterService {
	s := &characterService{
		open:   open,
		client: c,
		urls:   urls,
		log:    log,
		tracer: otel.Tracer(tracerName),
		repo:   sqliteRepository,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *characterService) Load(ctx context.Context) Result {
	runID := uuid.NewString()
	log := s.log.With("run_id", runID)

	ctx, span := s.tracer.Start(ctx, "characters.load",
		trace.WithAttributes(attribute.String("run_id", runID), attribute.Int("urls", len(s.urls))))
	defer span.End()

	res := s.load(ctx, log)
	if !res.OK() {
		log.Error(ctx, "failed to load characters", "stage", string(res.Stage), "error", res.Err)
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, string(res.Stage))
		return res
	}

	span.SetAttributes(attribute.Int("characters", len(res.Characters)))
	log.Info(ctx, "characters loaded", "count", len(res.Characters))
	return res
}

func (s *characterService) load(ctx context.Context, log logging.Logger) Result {
	var db *sql.DB
	err := s.step(ctx, StageOpen, func(ctx context.Context) (err error) {
		db, err = s.database(ctx)
		return err
	})
	if err != nil {
		return failed(StageOpen, err)
	}

	err = s.step(ctx, StageSchema, func(ctx context.Context) error {
		return client.EnsureSchema(ctx, db)
	})
	if err != nil {
		log.Warn(ctx, "failed to ensure schema", "stage", string(StageSchema), "error", err)
	}

	var list []models.Character
	err = s.step(ctx, StageFetch, func(ctx context.Context) (err error) {
		list, err = s.client.FetchCharacters(ctx, s.urls)
		return err
	})
	if err != nil {
		return failed(StageFetch, err)
	}
	log.Debug(ctx, "characters fetched", "count", len(list))

	err = s.step(ctx, StageWrite, func(ctx context.Context) error {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return s.repo(tx).ReplaceAll(ctx, list)
		})
	})
	if err != nil {
		return failed(StageWrite, err)
	}

	if n, err := s.repo(db).Count(ctx); err != nil {
		log.Warn(ctx, "failed to count cached characters", "error", err)
	} else {
		log.Debug(ctx, "characters cached", "count", n)
	}

	var stored []models.Character
	err = s.step(ctx, StageRead, func(ctx context.Context) (err error) {
		stored, err = s.repo(db).GetAll(ctx)
		return err
	})
	if err != nil {
		return failed(StageRead, err)
	}

	return Result{Characters: stored}
}

// step runs fn inside a child span named after the stage.
func (s *characterService) step(ctx context.Context, stage Stage, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "characters."+string(stage))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// database returns the open store, opening it on first use.
func (s *characterService) database(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if db == nil {
		return nil, client.ErrStoreNotReady
	}
	s.db = db
	return db, nil
}

func (s *characterService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
