package game

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"arise/internal/storage"
)

// Export writes the current game state as indented JSON, suitable for the
// profile page's "download my data" flow and for device-to-device moves.
func (s *Service) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.state); err != nil {
		return fmt.Errorf("export game state: %w", err)
	}
	return nil
}

// Import replaces the current state with a previously exported snapshot. The
// snapshot is backfilled and rolled over to today before it becomes visible.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	var st storage.GameState
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return fmt.Errorf("import game state: %w", err)
	}
	st.Normalize()
	NormalizeForNewDay(&st, s.catalog.MandatoryQuest(), s.today())
	s.state = &st
	return s.persist(ctx)
}
