package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"levelup/internal/engine"
	"levelup/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(storage.NewStore(db, nil)), cleanup, nil
}

// resolveQuestID maps a CLI argument to a quest id. Accepts the full id, a
// unique id prefix, or the 1-based position shown by `lvl list`.
func resolveQuestID(agg *storage.Aggregate, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("quest id is required")
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(agg.Quests) {
			return "", fmt.Errorf("quest #%d not found", n)
		}
		return agg.Quests[n-1].ID, nil
	}

	var match string
	for i := range agg.Quests {
		if agg.Quests[i].ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(agg.Quests[i].ID, arg) {
			if match != "" {
				return "", fmt.Errorf("quest id %q is ambiguous", arg)
			}
			match = agg.Quests[i].ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("quest %q not found", arg)
	}
	return match, nil
}
