package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDisclaimer(t *testing.T) {
	t.Run("SMS includes opt-out and omits the right-of-way notice", func(t *testing.T) {
		text := GenerateDisclaimer(ChannelSMS, "Jane Doe", "John Smith", "1 Main St")

		assert.Contains(t, text, "Reply STOP to opt-out.")
		assert.NotContains(t, text, "RIGHT-OF-WAY")
	})

	t.Run("Print carries the right-of-way notice", func(t *testing.T) {
		text := GenerateDisclaimer(ChannelPrint, "Jane Doe", "John Smith", "1 Main St")

		assert.Contains(t, text, "RIGHT-OF-WAY OF A HIGHWAY")
		assert.Contains(t, text, "Jane Doe")
		assert.Contains(t, text, "John Smith, Treasurer")
	})

	t.Run("Broadcast channels carry the approval line", func(t *testing.T) {
		radio := GenerateDisclaimer(ChannelRadio, "Jane Doe", "John Smith", "1 Main St")
		tv := GenerateDisclaimer(ChannelTV, "Jane Doe", "John Smith", "1 Main St")

		assert.Contains(t, radio, "approved by Jane Doe")
		assert.Contains(t, tv, "I'm Jane Doe and I approved this message.")
	})

	t.Run("Missing fields degrade to bracketed placeholders", func(t *testing.T) {
		text := GenerateDisclaimer(ChannelDigital, "", "", "")

		assert.Contains(t, text, "[CANDIDATE NAME]")
		assert.Contains(t, text, "[TREASURER NAME]")
		assert.Contains(t, text, "[CAMPAIGN ADDRESS]")
	})

	t.Run("Unknown channel falls back to the digital wording", func(t *testing.T) {
		unknown := GenerateDisclaimer(Channel("billboard"), "Jane Doe", "John Smith", "1 Main St")
		digital := GenerateDisclaimer(ChannelDigital, "Jane Doe", "John Smith", "1 Main St")

		assert.Equal(t, digital, unknown)
	})
}
