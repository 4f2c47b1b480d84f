// Package render turns structured outcomes into the text users read.
// Every function is pure: same input, same output, no I/O.
package render

import (
	"bot-lab/domain"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	Unauthorized     = "❌ Unauthorized. Admin access required."
	RestoreSucceeded = "✅ Session restored successfully!"
	RestoreFailed    = "❌ Invalid session ID"
	PairFailed       = "❌ Could not create a session right now. Please try again."
	BroadcastMissing = "❌ Please provide a message to broadcast"

	pairedAtLayout = "2006-01-02 15:04:05 MST"
)

// Links are optional official links shown in the menu and pair confirmation.
type Links struct {
	Website   string
	Audiomack string
}

func (l Links) empty() bool {
	return l.Website == "" && l.Audiomack == ""
}

// OnOff renders a boolean flag the way every reply shows the auto-responder.
func OnOff(enabled bool) string {
	return lo.Ternary(enabled, "🟢 ON", "🔴 OFF")
}

func Menu(botName string, prefix rune, links Links, autoResponder bool) string {
	p := string(prefix)
	var b strings.Builder
	fmt.Fprintf(&b, "🎵 *%s - Official Menu* 🎵\n\n", botName)
	b.WriteString("🤖 *AI Features*\n")
	fmt.Fprintf(&b, "• %sai <message> - Chat with AI\n", p)
	fmt.Fprintf(&b, "• %stranslate <text> <language> - Translate text\n\n", p)
	b.WriteString("🔗 *Session Management*\n")
	fmt.Fprintf(&b, "• %spair - Generate your session ID\n", p)
	fmt.Fprintf(&b, "• %srestore <id> - Restore your session\n", p)
	fmt.Fprintf(&b, "• %smenu - Show this menu\n\n", p)
	if !links.empty() {
		b.WriteString("🌐 *Official Links*\n")
		writeMenuLinks(&b, links)
		b.WriteString("\n")
	}
	b.WriteString("👑 *Admin Commands*\n")
	fmt.Fprintf(&b, "• %stoggle_ai - Toggle AI auto-responder\n", p)
	fmt.Fprintf(&b, "• %sbroadcast <msg> - Broadcast message\n", p)
	fmt.Fprintf(&b, "• %sstats - Show bot statistics\n\n", p)
	fmt.Fprintf(&b, "*Auto-responder Status: %s*\n", OnOff(autoResponder))
	b.WriteString("*Need help? Contact admin.*")
	return b.String()
}

func Welcome(botName string, prefix rune, autoResponder bool) string {
	p := string(prefix)
	return fmt.Sprintf("👋 Welcome to *%s!*\n\n", botName) +
		fmt.Sprintf("I'm your AI-powered WhatsApp assistant. Type *%smenu* to see all available commands.\n\n", p) +
		"*Quick Start:*\n" +
		fmt.Sprintf("• Use *%spair* to get your session ID\n", p) +
		fmt.Sprintf("• Use *%sai* to chat with AI\n", p) +
		fmt.Sprintf("• Use *%stranslate* for translations\n\n", p) +
		fmt.Sprintf("*Auto-responder is currently: %s*", OnOff(autoResponder))
}

func PairConfirmation(session domain.PairedSession, botName string, links Links) string {
	var b strings.Builder
	b.WriteString("🔗 *Session Paired Successfully!*\n\n")
	fmt.Fprintf(&b, "*Session ID:* %s\n", session.ID)
	fmt.Fprintf(&b, "*Bot Name:* %s\n", botName)
	fmt.Fprintf(&b, "*Your Name:* %s\n", session.DisplayName)
	fmt.Fprintf(&b, "*Paired At:* %s\n\n", session.CreatedAt.Format(pairedAtLayout))
	b.WriteString("💡 *Keep this ID safe to restore your session*")
	if !links.empty() {
		b.WriteString("\n\n")
		writeLinks(&b, links)
	}
	return strings.TrimRight(b.String(), "\n")
}

func RestoreConfirmation(botName string) string {
	return fmt.Sprintf("✅ Session restored! Welcome back to %s", botName)
}

// Answer prefixes generated text, fallback texts included.
func Answer(text string) string {
	return "🤖 " + text
}

// Translation renders a translation result. detected is the source language name, empty when unknown.
func Translation(language, text, detected string) string {
	if detected == "" {
		return fmt.Sprintf("🌍 Translation to %s:\n%s", language, text)
	}
	return fmt.Sprintf("🌍 Translation to %s (from %s):\n%s", language, detected, text)
}

func Toggled(enabled bool) string {
	return fmt.Sprintf("✅ AI Auto-Responder %s", lo.Ternary(enabled, "ENABLED", "DISABLED"))
}

func BroadcastMessage(text string) string {
	return "📢 *Broadcast from Admin:*\n\n" + text
}

func BroadcastReport(delivered int) string {
	return fmt.Sprintf("📢 Broadcast sent to %d users", delivered)
}

func Stats(s domain.Stats) string {
	return fmt.Sprintf("🤖 *%s Stats*\n\n", s.BotName) +
		fmt.Sprintf("✅ AI Auto-Responder: %s\n", OnOff(s.AutoResponder)) +
		fmt.Sprintf("🔗 Paired Sessions: %d\n", s.PairedSessions) +
		fmt.Sprintf("🤝 Active Users: %d\n", s.EngagedAddresses) +
		"🔄 Status: Operational\n" +
		fmt.Sprintf("👑 Admin: %s", s.Admin.Display())
}

func UsageRestore(prefix rune) string {
	return fmt.Sprintf("❌ Usage: %srestore <session-id>", string(prefix))
}

func UsageAsk(prefix rune) string {
	return fmt.Sprintf("❌ Usage: %sai <your message>", string(prefix))
}

func UsageTranslate(prefix rune) string {
	return fmt.Sprintf("❌ Usage: %stranslate <text> <language>", string(prefix))
}

func UnknownCommand(prefix rune) string {
	return fmt.Sprintf("❌ Unknown command. Type *%smenu* for available commands.", string(prefix))
}

func writeMenuLinks(b *strings.Builder, links Links) {
	if links.Website != "" {
		fmt.Fprintf(b, "• Website: %s\n", links.Website)
	}
	if links.Audiomack != "" {
		fmt.Fprintf(b, "• Audiomack: %s\n", links.Audiomack)
	}
}

func writeLinks(b *strings.Builder, links Links) {
	if links.Website != "" {
		fmt.Fprintf(b, "🌐 *Website:* %s\n", links.Website)
	}
	if links.Audiomack != "" {
		fmt.Fprintf(b, "🎵 *Audiomack:* %s\n", links.Audiomack)
	}
}

// FormatUptime renders a duration as "<minutes>m <seconds>s".
func FormatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
