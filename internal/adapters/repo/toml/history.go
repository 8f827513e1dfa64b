package toml

import (
	"context"
	"path/filepath"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

// HistoryRepository stores one ordered entry list per username, each in
// its own file under the history directory. It stores what it is given
// verbatim; ordering and date uniqueness are the caller's contract.
type HistoryRepository struct {
	dir string
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(dataDir string) *HistoryRepository {
	return &HistoryRepository{dir: filepath.Join(dataDir, historyDirName)}
}

func (r *HistoryRepository) Get(ctx context.Context, username string) (domain.HealthHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.pathForUser(username)
	if err != nil {
		return nil, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	var file historySchema
	if err := readRecordFile(path, &file); err != nil {
		return nil, err
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	history := make(domain.HealthHistory, 0, len(file.Entries))
	for _, entry := range file.Entries {
		history = append(history, entryFromSchema(entry))
	}

	return history, nil
}

func (r *HistoryRepository) Save(ctx context.Context, username string, history domain.HealthHistory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.pathForUser(username)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	file := historySchema{Version: currentSchemaVersion, Entries: make([]entrySchema, 0, len(history))}
	for _, entry := range history {
		file.Entries = append(file.Entries, entryToSchema(entry))
	}

	return writeRecordFile(path, file)
}

func (r *HistoryRepository) pathForUser(username string) (string, error) {
	name, err := fileNameForUser(username)
	if err != nil {
		return "", err
	}

	return filepath.Join(r.dir, name), nil
}
