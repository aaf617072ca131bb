// Package platform holds what the presentation adapters share: turning
// simulation events into log lines and run records.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/storage"
)

// RunSaver persists finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.RunRecord) (int64, error)
	HighScore() (int, error)
}

var _ RunSaver = (*storage.Store)(nil)

// Recorder observes simulation events for one frontend. It logs notable
// events and saves each finished run once.
type Recorder struct {
	saver    RunSaver
	logger   *log.Logger
	frontend string
	seed     int64
	best     int
}

// NewRecorder creates a recorder. saver may be nil to disable persistence.
func NewRecorder(saver RunSaver, logger *log.Logger, frontend string, seed int64) *Recorder {
	r := &Recorder{saver: saver, logger: logger, frontend: frontend, seed: seed}
	if saver != nil {
		best, err := saver.HighScore()
		if err != nil {
			logger.Warn("cannot read high score", "err", err)
		}
		r.best = best
	}
	return r
}

// Best returns the best score seen, including the stored high score.
func (r *Recorder) Best() int {
	return r.best
}

// Observe handles the events returned by one tick.
func (r *Recorder) Observe(events []survivor.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case survivor.LevelReached:
			r.logger.Info("level reached", "level", e.Level, "spawn_rate", e.SpawnRate)
		case survivor.UpgradeOffered:
			r.logger.Debug("upgrades offered", "options", e.Options)
		case survivor.UpgradeApplied:
			r.logger.Info("upgrade applied", "kind", e.Kind, "count", e.Count)
		case survivor.RunEnded:
			r.runEnded(e)
		case survivor.Restarted:
			r.logger.Debug("run restarted")
		}
	}
}

func (r *Recorder) runEnded(e survivor.RunEnded) {
	survived := time.Duration(e.Survived * float64(time.Second)).Round(time.Millisecond)
	r.logger.Info("run ended", "score", e.Score, "level", e.Level, "survived", survived)
	r.best = max(r.best, e.Score)

	if r.saver == nil || e.Score <= 0 {
		return
	}
	_, err := r.saver.SaveRun(storage.RunRecord{
		Frontend:        r.frontend,
		Score:           e.Score,
		Level:           e.Level,
		SpeedUpgrades:   e.Upgrades.Count(survivor.UpgradeSpeed),
		BulletUpgrades:  e.Upgrades.Count(survivor.UpgradeBulletSpeed),
		ExtraDirections: e.Upgrades.Count(survivor.UpgradeExtraDirections),
		Duration:        survived,
		Seed:            r.seed,
	})
	if err != nil {
		r.logger.Error("cannot save run", "err", err)
	}
}
