package modkit

import (
	"genailab/internal/core/lexicon"
	"genailab/internal/platform/config"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
)

// Deps is what every module is built from. The zero value works:
// a nil Metrics records nothing and a nil Lexicon means the embedded one
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Metrics
	Lexicon *lexicon.Lexicon
}

// Lex returns the configured lexicon or the embedded default
func (d Deps) Lex() *lexicon.Lexicon {
	if d.Lexicon != nil {
		return d.Lexicon
	}
	return lexicon.Default()
}

// Logger is the module logger tagged with component; without a configured Log it
// derives from the process logger
func (d Deps) Logger(component string) logger.Logger {
	if d.Log == nil {
		return *logger.Named(component)
	}
	return d.Log.With().Str("component", component).Logger()
}
