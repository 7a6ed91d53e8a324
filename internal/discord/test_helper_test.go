package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/persistence"
	"github.com/osse101/QuestTown_Go/internal/server"
	"github.com/osse101/QuestTown_Go/internal/session"
)

const testAPIKey = "test-api-key"

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a real game API behind httptest and a Discord session
// whose HTTP calls are captured instead of sent
type TestContext struct {
	Server    *httptest.Server
	APIClient *APIClient
	Session   *discordgo.Session

	mu       sync.Mutex
	edits    []discordgo.WebhookEdit
	deferred int
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	sessions := session.NewManager(persistence.NewMemoryProvider(), content.Default(), session.Config{},
		gamestate.WithRand(func(int) int { return 0 }))
	backend := httptest.NewServer(server.NewServer(server.Config{APIKey: testAPIKey}, sessions).Handler())

	client := NewAPIClient(backend.URL, testAPIKey)
	client.MaxRetries = 0

	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{Server: backend, APIClient: client, Session: s}
	s.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: ctx.capture}}

	t.Cleanup(backend.Close)
	return ctx
}

func (c *TestContext) capture(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch req.Method {
	case http.MethodPost:
		c.deferred++
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
			c.edits = append(c.edits, edit)
		}
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// lastEdit returns the final response edit sent to Discord
func (c *TestContext) lastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.edits, "no interaction response edit was sent")
	return c.edits[len(c.edits)-1]
}

func (c *TestContext) lastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := c.lastEdit(t)
	require.NotNil(t, edit.Embeds, "expected an embed, got content %v", edit.Content)
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

func (c *TestContext) lastContent(t *testing.T) string {
	t.Helper()
	edit := c.lastEdit(t)
	require.NotNil(t, edit.Content, "expected a plain message")
	return *edit.Content
}

// run invokes a command handler as Discord user "123"
func (c *TestContext) run(factory CommandFactory, opts map[string]string) {
	cmd, h := factory()
	h(c.Session, newInteraction(cmd.Name, opts), c.APIClient)
}

func newInteraction(name string, opts map[string]string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for k, v := range opts {
		data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  k,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: v,
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data:  data,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "123", Username: "Tester", Avatar: "abc"},
			},
		},
	}
}
