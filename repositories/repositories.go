package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter         ExecutorGetter
	ClearwatchDbRepository *ClearwatchDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:         NewExecutorGetter(pool),
		ClearwatchDbRepository: NewClearwatchDbRepository(),
	}
}
