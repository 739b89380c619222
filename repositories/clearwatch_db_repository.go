package repositories

// ClearwatchDbRepository hosts every repository method hitting the clearwatch
// database. Methods take an Executor explicitly so callers decide whether
// they run on the pool or inside a transaction.
type ClearwatchDbRepository struct{}

func NewClearwatchDbRepository() *ClearwatchDbRepository {
	return &ClearwatchDbRepository{}
}
