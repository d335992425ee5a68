package random

import "go.uber.org/fx"

// Module provides the production randomness source.
var Module = fx.Provide(func() Source { return NewCryptoSource() })
