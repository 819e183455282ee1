package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/domain/command"
	"readwatch/internal/core/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubTracker struct{}

func (s *stubTracker) Add(_ context.Context, title string, _ domain.Category,
	_ domain.Status) (domain.Entry, error) {
	return domain.Entry{Title: title}, nil
}

func (s *stubTracker) Remove(_ context.Context, title string, _ domain.Category) ([]string, error) {
	return []string{title}, nil
}

func (s *stubTracker) List(ctx context.Context, _ domain.Category) ([]domain.Entry, error) {
	log.Ctx(ctx).Info().Msg("listing entries")
	return []domain.Entry{{Title: "Berserk", Status: domain.Watching}}, nil
}

func (s *stubTracker) Search(_ context.Context, _ string, _ domain.Category) ([]domain.SearchResult, error) {
	return nil, nil
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logger, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})

	return buf
}

func logLines(t *testing.T, buf *bytes.Buffer) map[string]map[string]interface{} {
	t.Helper()

	lines := make(map[string]map[string]interface{})
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		msg, _ := line["message"].(string)
		lines[msg] = line
	}

	return lines
}

func TestRespond_RequestIDReachesCommandLogs(t *testing.T) {
	buf := captureLogs(t)

	registry := &command.Registry{}
	registry.Register(command.NewListEntries(&stubTracker{}))
	dispatcher := service.NewDispatcher(registry, time.Second)

	s := new(MockSender)
	s.On("SendChatAction", mock.Anything, "100", domain.Typing).Maybe()
	s.On("SendMessageReply", mock.Anything, mock.Anything, "Your manga list:\n• Berserk [Watching]").Return(nil)

	respond(t.Context(), dispatcher, s, &domain.Message{ID: "1", ChatID: "100", Username: "@bob", Text: "list manga"})
	s.AssertExpectations(t)

	lines := logLines(t, buf)

	received, ok := lines["received message"]
	require.True(t, ok)
	requestID, _ := received["requestId"].(string)
	require.NotEmpty(t, requestID)

	for _, msg := range []string{"handling request", "listing entries", "reply sent"} {
		line, ok := lines[msg]
		require.True(t, ok, msg)
		assert.Equal(t, requestID, line["requestId"], msg)
		assert.Equal(t, "100", line["chatId"], msg)
		assert.Equal(t, "1", line["messageId"], msg)
	}

	assert.Equal(t, "list", lines["handling request"]["action"])
}

func TestRespond_RequestIDDiffersPerMessage(t *testing.T) {
	buf := captureLogs(t)

	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).Return("help")
	s := new(MockSender)
	s.On("SendChatAction", mock.Anything, mock.Anything, domain.Typing).Maybe()
	s.On("SendMessageReply", mock.Anything, mock.Anything, "help").Return(nil)

	var ids []interface{}
	for _, text := range []string{"banana", "apple"} {
		buf.Reset()
		respond(t.Context(), d, s, &domain.Message{ID: "1", ChatID: "100", Text: text})
		ids = append(ids, logLines(t, buf)["reply sent"]["requestId"])
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
