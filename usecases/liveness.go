package usecases

import (
	"context"

	"github.com/clearwatch/clearwatch-backend/repositories"
	"github.com/clearwatch/clearwatch-backend/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      livenessRepository
}

func (uc LivenessUsecase) Liveness(ctx context.Context) error {
	return uc.repository.Liveness(ctx, uc.executorFactory.NewExecutor())
}
