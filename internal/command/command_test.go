package command

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/conversation"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	config  *configuration.Config
	storage *Storage
	store   *conversation.Store
	client  *backend.Client
	output  *bytes.Buffer
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config, err := configuration.Default()
	require.NoError(t, err)
	config.BackendURL = server.URL
	config.Chat.InputHistoryFile = filepath.Join(t.TempDir(), "input_history")
	config.Storage.Path = filepath.Join(t.TempDir(), "pantry.db")

	storage := NewStorage(config.Storage, discardLogger)
	t.Cleanup(func() { storage.Close() })
	store, err := storage.Conversation()
	require.NoError(t, err)

	output := &bytes.Buffer{}
	noColor := color.NoColor
	cli.SetOutput(output)
	color.NoColor = true
	t.Cleanup(func() {
		cli.SetOutput(color.Output)
		color.NoColor = noColor
	})

	return &fixture{
		config:  config,
		storage: storage,
		store:   store,
		client:  backend.New(server.URL, 5*time.Second, discardLogger),
		output:  output,
	}
}

func pantryHandler(items, expiry string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/items":
			w.Write([]byte(items))
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			w.Write([]byte(`{"message": "Added 2 cartons of milk."}`))
		case r.Method == http.MethodGet && r.URL.Path == "/expiry":
			w.Write([]byte(expiry))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestSendCmd(t *testing.T) {
	f := newFixture(t, pantryHandler(`[{"id": 1, "name": "milk", "quantity": 2}]`, `[]`))
	f.store.Append(conversation.NewUserMessage("earlier"))

	cmd := NewSendCmd(f.config, f.storage, f.client)
	cmd.SetArgs([]string{"I", "bought", "2", "milk"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	require.Equal(t, "Added 2 cartons of milk.\n🛒 1 items in your pantry\n", f.output.String())
	messages := f.store.Load()
	require.Len(t, messages, 3, "the stored conversation is extended, not replaced")
	require.Equal(t, "I bought 2 milk", messages[1].Content)
}

func TestSendCmdFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	cmd := NewSendCmd(f.config, f.storage, f.client)
	cmd.SetArgs([]string{"add", "eggs"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.True(t, strings.HasPrefix(f.output.String(), "Error: API Quota Error (429)"))
}

func TestExpiryCmd(t *testing.T) {
	f := newFixture(t, pantryHandler(`[]`, `["milk (2024-05-03)", "eggs (2024-05-05)"]`))

	cmd := NewExpiryCmd(f.storage, f.client)
	cmd.SetArgs([]string{"--raw"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "Here are the items expiring in the next 7 days:\n\n- milk (2024-05-03)\n- eggs (2024-05-05)\n", f.output.String())

	f.output.Reset()
	cmd = NewExpiryCmd(f.storage, f.client)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, f.output.String(), "milk")
	require.Contains(t, f.output.String(), "eggs")
	require.Len(t, f.store.Load(), 4)
}

func TestItemsCmd(t *testing.T) {
	f := newFixture(t, pantryHandler(`[{"id": 1, "name": "milk", "quantity": 2}, {"id": 2, "name": "eggs", "quantity": 12, "expiry": "2000-01-01"}]`, `[]`))

	cmd := NewItemsCmd(f.client)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	output := f.output.String()
	require.Contains(t, output, "Milk")
	require.Contains(t, output, "(expired)")
	require.Contains(t, output, "2 items, 14 units")

	f.output.Reset()
	cmd = NewItemsCmd(f.client)
	cmd.SetArgs([]string{"--template", `{{ range .Items }}{{ .Name | upper }}={{ .Quantity }};{{ end }}`})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "MILK=2;EGGS=12;", f.output.String())
}

func TestItemsCmdEmptyAndErrors(t *testing.T) {
	f := newFixture(t, pantryHandler(`[]`, `[]`))
	cmd := NewItemsCmd(f.client)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "Your pantry is empty.\n", f.output.String())

	cmd = NewItemsCmd(f.client)
	cmd.SetArgs([]string{"--template", "{{ .Items"})
	cmd.SilenceErrors, cmd.SilenceUsage = true, true
	require.ErrorContains(t, cmd.ExecuteContext(context.Background()), "parsing template")

	failing := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	cmd = NewItemsCmd(failing.client)
	cmd.SetArgs([]string{})
	cmd.SilenceErrors, cmd.SilenceUsage = true, true
	require.ErrorContains(t, cmd.ExecuteContext(context.Background()), "fetching items")
}

func TestHistoryCmd(t *testing.T) {
	f := newFixture(t, pantryHandler(`[]`, `[]`))

	cmd := NewHistoryCmd(f.storage)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "No conversation yet.\n", f.output.String())

	f.store.Append(conversation.NewUserMessage("add milk"))
	f.store.Append(conversation.NewAssistantMessage("Successfully added 1 items."))
	f.store.Append(conversation.NewUserMessage("add eggs"))
	f.store.Append(conversation.NewAssistantMessage("Error: Network Error: The server did not respond."))

	f.output.Reset()
	cmd = NewHistoryCmd(f.storage)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	output := f.output.String()
	require.Contains(t, output, "PANTRY CHAT HISTORY")
	require.Contains(t, output, "> add milk\nSuccessfully added 1 items.\n---")
	require.True(t, strings.HasSuffix(output, "> add eggs\nError: Network Error: The server did not respond.\n"))

	f.output.Reset()
	cmd = NewHistoryCmd(f.storage)
	cmd.SetArgs([]string{"clear", "--yes"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "Conversation cleared.\n", f.output.String())
	require.Empty(t, f.store.Load())
}

func TestStorageOpensOnFirstUse(t *testing.T) {
	config, err := configuration.Default()
	require.NoError(t, err)
	config.Storage.Driver = configuration.StorageDriverBolt
	config.Storage.Path = filepath.Join(t.TempDir(), "pantry.db")

	storage := NewStorage(config.Storage, discardLogger)
	require.NoError(t, storage.Close(), "closing an unopened storage is a no-op")
	_, err = os.Stat(config.Storage.Path)
	require.True(t, os.IsNotExist(err), "nothing is opened before a command asks for the conversation")

	first, err := storage.Conversation()
	require.NoError(t, err)
	second, err := storage.Conversation()
	require.NoError(t, err)
	require.Same(t, first, second)
	require.NoError(t, storage.Close())
	_, err = os.Stat(config.Storage.Path)
	require.NoError(t, err)
}

func TestHistoryCmdWhileConversationIsOpen(t *testing.T) {
	f := newFixture(t, pantryHandler(`[]`, `[]`))
	f.store.Append(conversation.NewUserMessage("add milk"))

	// Another process holds the default store open, as a running chat does.
	other := NewStorage(f.config.Storage, discardLogger)
	t.Cleanup(func() { other.Close() })
	cmd := NewHistoryCmd(other)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, f.output.String(), "> add milk")
}
