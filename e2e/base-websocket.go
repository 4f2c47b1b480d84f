package e2e

import (
	"bot-lab/auth"
	"bot-lab/domain"
	"bot-lab/infrastructure/transport"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseBotSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseBotSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BotAddr == "" {
		s.T().Skip("BOT_ADDR not set, no running bot to talk to")
	}
}

// Client is one channel address connected to the bot.
type Client struct {
	suite   *BaseBotSuite
	Address domain.Address
	conn    *websocket.Conn
}

// Connect opens a websocket speaking for address, logging a colorized header.
func (s *BaseBotSuite) Connect(name string, address domain.Address) *Client {
	header := fmt.Sprintf("  ====== %s (%s) ======", name, address)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	params := url.Values{"address": {string(address)}, "name": {name}}
	if s.Config.TransportSecret != "" {
		token, err := auth.NewTokenIssuer(s.Config.TransportSecret, time.Hour).Issue(address, name)
		s.Require().NoError(err)
		params.Set("token", token)
	}
	u := url.URL{Scheme: "ws", Host: s.Config.BotAddr, Path: "/ws", RawQuery: params.Encode()}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	s.Require().NoError(err, "Failed to connect to bot at "+s.Config.BotAddr)
	s.T().Cleanup(func() { _ = conn.Close() })
	return &Client{suite: s, Address: address, conn: conn}
}

func (c *Client) Send(body string) {
	c.suite.T().Logf("→ [%s] %s", c.Address, body)
	c.suite.Require().NoError(c.conn.WriteJSON(transport.InboundFrame{Body: body}))
}

// Expect reads frames until one contains fragment, and returns it.
// Frames not matching (the welcome, for instance) are logged and skipped.
func (c *Client) Expect(fragment string) transport.OutboundFrame {
	return c.ExpectAll(fragment)[0]
}

// ExpectAll reads frames until every fragment was seen, in any order.
// Replies and queued messages are not ordered relative to each other.
func (c *Client) ExpectAll(fragments ...string) []transport.OutboundFrame {
	found := make([]transport.OutboundFrame, len(fragments))
	seen := make([]bool, len(fragments))
	remaining := len(fragments)
	deadline := time.Now().Add(c.suite.Config.ReplyTimeout)
	for remaining > 0 {
		c.suite.Require().NoError(c.conn.SetReadDeadline(deadline))
		var frame transport.OutboundFrame
		err := c.conn.ReadJSON(&frame)
		c.suite.Require().NoError(err, "missing frames among %q", fragments)
		c.suite.T().Logf("← [%s] %s", c.Address, frame.Text)
		for i, fragment := range fragments {
			if !seen[i] && strings.Contains(frame.Text, fragment) {
				seen[i] = true
				found[i] = frame
				remaining--
				break
			}
		}
	}
	return found
}
