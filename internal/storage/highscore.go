package storage

import (
	"fmt"
	"strconv"
)

// HighScoreKey is the kv key holding the persisted high score.
const HighScoreKey = "cc_highscore"

// LoadHighScore returns the persisted high score.
// Returns 0 with no error when nothing has been stored yet; a stored value
// that does not parse yields 0 and an error.
func (s *Store) LoadHighScore() (int, error) {
	raw, ok, err := s.getValue(HighScoreKey)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !ok {
		return 0, nil
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score %q: %w", raw, err)
	}
	return score, nil
}

// SaveHighScore stores score unless a higher score is already persisted.
// Sessions sharing one store can finish runs in any order; the larger
// value always wins. A corrupt stored value is replaced.
func (s *Store) SaveHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = CASE
		     WHEN CAST(kv.value AS INTEGER) > CAST(excluded.value AS INTEGER) THEN kv.value
		     ELSE excluded.value
		   END,
		   updated_at = CURRENT_TIMESTAMP`,
		HighScoreKey, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore deletes the persisted high score.
func (s *Store) ResetHighScore() error {
	if err := s.deleteValue(HighScoreKey); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}
