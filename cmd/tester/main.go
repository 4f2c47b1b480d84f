// Command tester talks to a running bot: it sends one message over the websocket transport
// and prints every frame received until the wait period expires, or prints /health as a table.
package main

import (
	"bot-lab/auth"
	"bot-lab/domain"
	"bot-lab/infrastructure/transport"
	"bot-lab/projection"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
)

func main() {
	addr := flag.String("addr", "localhost:3000", "Bot host:port")
	address := flag.String("address", "tester@c.us", "Channel address to speak for")
	name := flag.String("name", "Tester", "Display name")
	message := flag.String("message", "!menu", "Message body to send")
	wait := flag.Duration("wait", 3*time.Second, "How long to wait for replies")
	status := flag.Bool("status", false, "Print the status document and exit")
	flag.Parse()

	var err error
	if *status {
		err = printStatus(*addr)
	} else {
		err = converse(*addr, domain.Address(*address), *name, *message, *wait)
	}
	if err != nil {
		color.Red.Println("Error:", err)
		os.Exit(1)
	}
}

func printStatus(addr string) error {
	resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var snapshot projection.StatusSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return fmt.Errorf("invalid status document: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"Status", snapshot.Status},
		{"Bot", snapshot.Bot},
		{"Ready", strconv.FormatBool(snapshot.Ready)},
		{"Sessions", strconv.Itoa(snapshot.Sessions)},
		{"Active users", strconv.Itoa(snapshot.ActiveUsers)},
		{"AI enabled", strconv.FormatBool(snapshot.AIEnabled)},
		{"OpenAI configured", strconv.FormatBool(snapshot.OpenAIConfigured)},
		{"Uptime", snapshot.Uptime},
		{"Memory", snapshot.Memory},
		{"Timestamp", snapshot.Timestamp},
	})
	table.Render()
	return nil
}

func converse(addr string, address domain.Address, name, message string, wait time.Duration) error {
	params := url.Values{"address": {string(address)}, "name": {name}}
	// The token is only needed when the bot runs with a transport secret
	if secret := os.Getenv("TRANSPORT_JWT_SECRET"); secret != "" {
		token, err := auth.NewTokenIssuer(secret, time.Hour).Issue(address, name)
		if err != nil {
			return err
		}
		params.Set("token", token)
	}

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws", RawQuery: params.Encode()}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", u.Redacted(), err)
	}
	defer conn.Close()

	color.Cyan.Printf("→ [%s] %s\n", address, message)
	if err := conn.WriteJSON(transport.InboundFrame{Body: message}); err != nil {
		return err
	}

	deadline := time.Now().Add(wait)
	for {
		_ = conn.SetReadDeadline(deadline)
		var frame transport.OutboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			// The wait period elapsed
			return nil
		}
		switch frame.Type {
		case transport.FrameError:
			color.Red.Printf("← error: %s\n\n", frame.Text)
		default:
			color.Green.Printf("← %s\n\n", frame.Text)
		}
	}
}
