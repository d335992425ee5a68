package memory

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gambling/internal/domain/repository"
)

// Module wires the process-wide in-memory ledger.
var Module = fx.Options(
	fx.Provide(NewLedger),
	fx.Provide(func(l *Ledger) repository.BalanceLedger { return l }),
)
