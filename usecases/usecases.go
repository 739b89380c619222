package usecases

import (
	"time"

	"github.com/clearwatch/clearwatch-backend/repositories"
	"github.com/clearwatch/clearwatch-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories

	screeningValidityWindow time.Duration
	watchlistReadTimeout    time.Duration
	matcherParallelism      int
}

type Option func(*Usecases)

// WithScreeningValidityWindow sets how long a completed screening stays
// reusable before a re-verification is due.
func WithScreeningValidityWindow(window time.Duration) Option {
	return func(u *Usecases) {
		u.screeningValidityWindow = window
	}
}

func WithWatchlistReadTimeout(timeout time.Duration) Option {
	return func(u *Usecases) {
		u.watchlistReadTimeout = timeout
	}
}

func WithMatcherParallelism(parallelism int) Option {
	return func(u *Usecases) {
		u.matcherParallelism = parallelism
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories:            repos,
		screeningValidityWindow: 90 * 24 * time.Hour,
		watchlistReadTimeout:    5 * time.Second,
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewScreeningUsecase() ScreeningUsecase {
	return ScreeningUsecase{
		executorFactory:      usecases.NewExecutorFactory(),
		watchlistRepository:  usecases.Repositories.ClearwatchDbRepository,
		repository:           usecases.Repositories.ClearwatchDbRepository,
		validityWindow:       usecases.screeningValidityWindow,
		watchlistReadTimeout: usecases.watchlistReadTimeout,
		matcherParallelism:   usecases.matcherParallelism,
	}
}

func (usecases Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ClearwatchDbRepository,
	}
}
