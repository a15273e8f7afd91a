// internal/client/tui/recipients.go
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var pillStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#383838")).
	Padding(0, 1).
	MarginRight(1)

// RecipientPills holds the recipients of a direct message, one pill per
// address. Addresses are not validated.
type RecipientPills struct {
	addresses []string
}

func NewRecipientPills() *RecipientPills {
	return &RecipientPills{}
}

// SetFromAddressString replaces the pills with the comma separated addresses
// in value.
func (r *RecipientPills) SetFromAddressString(value string) {
	r.addresses = parseAddresses(value)
}

func (r *RecipientPills) Addresses() []string {
	return append([]string{}, r.addresses...)
}

// Append adds the addresses in value after the existing pills.
func (r *RecipientPills) Append(value string) {
	r.addresses = lo.Uniq(append(r.addresses, parseAddresses(value)...))
}

// RemoveLast drops the last pill and reports whether there was one.
func (r *RecipientPills) RemoveLast() bool {
	if len(r.addresses) == 0 {
		return false
	}
	r.addresses = r.addresses[:len(r.addresses)-1]
	return true
}

func (r *RecipientPills) Clear() {
	r.addresses = nil
}

func (r *RecipientPills) View() string {
	pills := lo.Map(r.addresses, func(addr string, _ int) string {
		return pillStyle.Render(addr)
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

func parseAddresses(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Uniq(lo.Compact(parts))
}
