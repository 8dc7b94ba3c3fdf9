package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/rng"
	"github.com/pontesfelipe/sistur-sub000/internal/sim"
	"github.com/pontesfelipe/sistur-sub000/internal/telemetry"
)

// Command is one player action against a session. All actions funnel
// through Service.Apply so persistence and telemetry happen in one place.
type Command struct {
	Action string `json:"action"`
	Index  int    `json:"index"`
	Biome  string `json:"biome,omitempty"`
}

const (
	ActionPlay       = "play"
	ActionDiscard    = "discard"
	ActionEndTurn    = "end_turn"
	ActionEvent      = "event"
	ActionCouncil    = "council"
	ActionReward     = "reward"
	ActionRewardSkip = "reward_skip"
	ActionReset      = "reset"
)

type liveGame struct {
	game      *sim.Game
	seed      int64
	createdAt time.Time
}

// Service owns the live games and mediates between transports, the
// engine, and persistence.
type Service struct {
	cat    *catalog.Catalog
	bal    config.Balance
	repo   Repo
	events telemetry.Repository
	log    *zap.Logger

	mu   sync.Mutex
	live map[string]*liveGame
}

func NewService(cat *catalog.Catalog, bal config.Balance, repo Repo, events telemetry.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cat:    cat,
		bal:    bal,
		repo:   repo,
		events: events,
		log:    log,
		live:   make(map[string]*liveGame),
	}
}

// Create starts a new playthrough. An empty biome falls back to the first
// catalog biome; a zero seed asks for a random one.
func (s *Service) Create(ctx context.Context, biomeID string, seed int64) (Session, error) {
	if biomeID == "" && len(s.cat.Biomes) > 0 {
		biomeID = s.cat.Biomes[0].ID
	}
	if seed == 0 {
		var err error
		seed, err = rng.NewSeed()
		if err != nil {
			return Session{}, fmt.Errorf("seed: %w", err)
		}
	}
	game, err := sim.New(s.cat, s.bal, rng.NewSeeded(seed), biomeID)
	if err != nil {
		return Session{}, err
	}

	now := time.Now().UTC()
	lg := &liveGame{game: game, seed: seed, createdAt: now}
	sess := s.toSession(uuid.NewString(), lg, now)

	s.mu.Lock()
	s.live[sess.ID] = lg
	s.mu.Unlock()

	if err := s.repo.Save(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.record(telemetry.EventGameStarted, telemetry.EventMetadata{"session": sess.ID, "biome": sess.State.Biome})
	s.log.Info("session created",
		zap.String("session", sess.ID),
		zap.String("biome", sess.State.Biome),
		zap.Int64("seed", seed))
	return sess, nil
}

// Snapshot returns the current state of a session.
func (s *Service) Snapshot(ctx context.Context, id string) (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lg, err := s.load(ctx, id)
	if err != nil {
		return sim.State{}, err
	}
	return lg.game.Snapshot(), nil
}

// Stats aggregates this session's telemetry events.
func (s *Service) Stats(ctx context.Context, id string) (telemetry.Stats, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return telemetry.Stats{}, err
	}
	if s.events == nil {
		return telemetry.CalculateStats(nil, time.Time{})
	}
	own, err := s.events.SessionEvents(id)
	if err != nil {
		return telemetry.Stats{}, err
	}
	return telemetry.CalculateStats(own, time.Time{})
}

func (s *Service) List(ctx context.Context) ([]Session, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.live, id)
	s.mu.Unlock()
	return s.repo.Delete(ctx, id)
}

// Apply runs one command against a session and persists the result.
// Commands the engine refuses (wrong phase, bad index, unaffordable cost)
// come back as the unchanged snapshot, not as errors.
func (s *Service) Apply(ctx context.Context, id string, cmd Command) (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lg, err := s.load(ctx, id)
	if err != nil {
		return sim.State{}, err
	}
	before := lg.game.Snapshot()

	switch cmd.Action {
	case ActionPlay:
		lg.game.PlayCard(cmd.Index)
	case ActionDiscard:
		lg.game.DiscardCard(cmd.Index)
	case ActionEndTurn:
		lg.game.EndTurn()
	case ActionEvent:
		if _, err := lg.game.ResolveEvent(cmd.Index); err != nil {
			return sim.State{}, err
		}
	case ActionCouncil:
		if _, err := lg.game.ResolveCouncil(cmd.Index); err != nil {
			return sim.State{}, err
		}
	case ActionReward:
		lg.game.PickReward(cmd.Index)
	case ActionRewardSkip:
		lg.game.SkipReward()
	case ActionReset:
		if err := lg.game.Reset(cmd.Biome); err != nil {
			return sim.State{}, err
		}
	default:
		return sim.State{}, fmt.Errorf("unknown action %q", cmd.Action)
	}

	after := lg.game.Snapshot()
	sess := s.toSession(id, lg, time.Now().UTC())
	if err := s.repo.Save(ctx, sess); err != nil {
		return sim.State{}, fmt.Errorf("persist session: %w", err)
	}
	s.recordDiff(id, before, after)
	return after, nil
}

// load returns the live game for id, restoring it from the repo on a
// cold start. Callers hold s.mu.
func (s *Service) load(ctx context.Context, id string) (*liveGame, error) {
	if lg, ok := s.live[id]; ok {
		return lg, nil
	}
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	lg := &liveGame{
		game:      sim.Restore(s.cat, s.bal, rng.NewSeeded(sess.Seed), sess.State),
		seed:      sess.Seed,
		createdAt: sess.CreatedAt,
	}
	s.live[id] = lg
	s.log.Debug("session restored", zap.String("session", id), zap.Int("turn", sess.State.Turn))
	return lg, nil
}

func (s *Service) toSession(id string, lg *liveGame, now time.Time) Session {
	return Session{
		ID:        id,
		Seed:      lg.seed,
		CreatedAt: lg.createdAt,
		UpdatedAt: now,
		State:     lg.game.Snapshot(),
	}
}

func (s *Service) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if s.events == nil {
		return
	}
	if err := s.events.RecordEvent(t, meta); err != nil {
		s.log.Warn("record telemetry", zap.Error(err))
	}
}

// recordDiff turns new history entries into telemetry events.
func (s *Service) recordDiff(id string, before, after sim.State) {
	if s.events == nil {
		return
	}
	if len(after.History) < len(before.History) {
		// reset truncates history
		return
	}
	for _, e := range after.History[len(before.History):] {
		meta := telemetry.EventMetadata{"session": id, "turn": e.Turn, "ref": e.Ref}
		switch e.Kind {
		case sim.LogCardPlayed:
			if card, err := s.cat.Card(e.Ref); err == nil {
				meta["category"] = string(card.Category)
			}
			s.record(telemetry.EventCardPlayed, meta)
		case sim.LogCardDiscarded:
			s.record(telemetry.EventCardDiscarded, meta)
		case sim.LogTurnEnded:
			s.record(telemetry.EventTurnEnded, meta)
		case sim.LogDisaster:
			s.record(telemetry.EventDisasterStruck, meta)
		case sim.LogEventResolved:
			meta["kind"] = e.Note
			s.record(telemetry.EventEventResolved, meta)
		case sim.LogCouncilResolved:
			meta["kind"] = e.Note
			s.record(telemetry.EventCouncilResolved, meta)
		case sim.LogRewardPicked:
			s.record(telemetry.EventRewardPicked, meta)
		case sim.LogRewardSkipped:
			s.record(telemetry.EventRewardSkipped, meta)
		}
	}
	if !before.GameOver && after.GameOver {
		s.record(telemetry.EventGameLost, telemetry.EventMetadata{"session": id, "reason": string(after.EndReason), "turn": after.Turn})
		s.log.Info("game lost", zap.String("session", id), zap.String("reason", string(after.EndReason)))
	}
	if !before.Victory && after.Victory {
		s.record(telemetry.EventGameWon, telemetry.EventMetadata{"session": id, "turn": after.Turn})
		s.log.Info("game won", zap.String("session", id), zap.Int("turn", after.Turn))
	}
}
