package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
)

func (repo *ClearwatchDbRepository) Liveness(ctx context.Context, exec Executor) error {
	var value int
	if err := exec.QueryRow(ctx, "SELECT 1").Scan(&value); err != nil {
		return errors.Wrap(err, "database liveness check failed")
	}
	return nil
}
