package usecase

import "go.uber.org/fx"

// Module provides application usecases.
var Module = fx.Provide(
	NewBetUseCase,
	NewIdentityUseCase,
)
