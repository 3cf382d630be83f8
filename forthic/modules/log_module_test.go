package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forthic-lang/forthic/forthic"
)

func setupLogInterpreter(logger *zap.Logger) *forthic.Interpreter {
	interp := forthic.NewInterpreter()
	coreMod := NewCoreModule()
	logMod := NewLogModule(logger)
	interp.ImportModule(coreMod.Module, "")
	interp.ImportModule(logMod.Module, "")
	return interp
}

func TestLog_StartEndLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	interp := setupLogInterpreter(logger)

	err := interp.Run(`"request" START-LOG "request" END-LOG`)
	require.NoError(t, err)

	messages := logs.All()
	require.Len(t, messages, 2)
	assert.Equal(t, "log start", messages[0].Message)
	assert.Equal(t, "log end", messages[1].Message)
}

func TestLog_Profiling(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	interp := setupLogInterpreter(logger)

	err := interp.Run(`PROFILE-START "step-1" PROFILE-TIMESTAMP PROFILE-END PROFILE-DATA`)
	require.NoError(t, err)

	result := interp.StackPop()
	data, ok := result.(map[string]interface{})
	require.True(t, ok)

	timestamps, ok := data["timestamps"].([]interface{})
	require.True(t, ok)
	require.Len(t, timestamps, 1)

	entry, ok := timestamps[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "step-1", entry["label"])

	wordCounts, ok := data["word_counts"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, wordCounts)

	messageNames := make([]string, 0, len(logs.All()))
	for _, entry := range logs.All() {
		messageNames = append(messageNames, entry.Message)
	}
	assert.Contains(t, messageNames, "profile start")
	assert.Contains(t, messageNames, "profile timestamp")
	assert.Contains(t, messageNames, "profile end")
}

func TestLog_ProfileStartResetsEntries(t *testing.T) {
	logger := zap.NewNop()
	interp := setupLogInterpreter(logger)

	err := interp.Run(`PROFILE-START "first" PROFILE-TIMESTAMP PROFILE-START PROFILE-DATA`)
	require.NoError(t, err)

	result := interp.StackPop().(map[string]interface{})
	timestamps := result["timestamps"].([]interface{})
	assert.Empty(t, timestamps)
}
