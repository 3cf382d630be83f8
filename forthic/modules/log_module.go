package modules

import (
	"time"

	"go.uber.org/zap"

	"github.com/forthic-lang/forthic/forthic"
)

// LogModule provides structured logging and lightweight execution profiling,
// backed by a zap.Logger rather than the ad-hoc print statements a bare
// profiling implementation would reach for.
type LogModule struct {
	*forthic.Module
	logger *zap.Logger

	profileStartedAt time.Time
	profileEntries   []interface{}
}

// NewLogModule creates a new log module writing through logger.
func NewLogModule(logger *zap.Logger) *LogModule {
	m := &LogModule{
		Module: forthic.NewModule("log", ""),
		logger: logger,
	}
	m.registerWords()
	return m
}

func (m *LogModule) registerWords() {
	m.AddModuleWord("START-LOG", m.startLog)
	m.AddModuleWord("END-LOG", m.endLog)

	m.AddModuleWord("PROFILE-START", m.profileStart)
	m.AddModuleWord("PROFILE-END", m.profileEnd)
	m.AddModuleWord("PROFILE-TIMESTAMP", m.profileTimestamp)
	m.AddModuleWord("PROFILE-DATA", m.profileData)
}

func (m *LogModule) startLog(interp *forthic.Interpreter) error {
	label, _ := interp.StackPop().(string)
	m.logger.Info("log start", zap.String("label", label))
	return nil
}

func (m *LogModule) endLog(interp *forthic.Interpreter) error {
	label, _ := interp.StackPop().(string)
	m.logger.Info("log end", zap.String("label", label))
	return nil
}

func (m *LogModule) profileStart(interp *forthic.Interpreter) error {
	m.profileStartedAt = time.Now()
	m.profileEntries = m.profileEntries[:0]
	m.logger.Info("profile start")
	return nil
}

func (m *LogModule) profileEnd(interp *forthic.Interpreter) error {
	elapsed := time.Since(m.profileStartedAt)
	m.logger.Info("profile end", zap.Duration("elapsed", elapsed))
	return nil
}

func (m *LogModule) profileTimestamp(interp *forthic.Interpreter) error {
	label, _ := interp.StackPop().(string)
	elapsedMs := time.Since(m.profileStartedAt).Milliseconds()

	m.profileEntries = append(m.profileEntries, map[string]interface{}{
		"label":      label,
		"elapsed_ms": elapsedMs,
	})
	m.logger.Debug("profile timestamp", zap.String("label", label), zap.Int64("elapsed_ms", elapsedMs))
	return nil
}

// profileData pushes the timestamps recorded since the last PROFILE-START.
// word_counts stays empty: that requires instrumenting every word dispatch in
// the interpreter's run loop, which this module intentionally doesn't do.
func (m *LogModule) profileData(interp *forthic.Interpreter) error {
	timestamps := make([]interface{}, len(m.profileEntries))
	copy(timestamps, m.profileEntries)

	result := map[string]interface{}{
		"word_counts": []interface{}{},
		"timestamps":  timestamps,
	}
	interp.StackPush(result)
	return nil
}
