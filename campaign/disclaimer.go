package campaign

import "fmt"

// Channel is a paid-media channel with its own disclaimer rules.
type Channel string

const (
	ChannelDigital Channel = "digital"
	ChannelPrint   Channel = "print"
	ChannelSMS     Channel = "sms"
	ChannelRadio   Channel = "radio"
	ChannelTV      Channel = "tv"
)

// Bracketed tokens substituted for fields the profile has not filled in yet.
const (
	placeholderCandidate = "[CANDIDATE NAME]"
	placeholderTreasurer = "[TREASURER NAME]"
	placeholderAddress   = "[CAMPAIGN ADDRESS]"
)

// GenerateDisclaimer renders the legally required attribution text for one
// channel. The per-channel wording is a compliance requirement and must stay
// verbatim; do not reword it for style. Missing fields degrade to bracketed
// placeholders so a draft can still be produced.
func GenerateDisclaimer(channel Channel, candidateName, treasurerName, campaignAddress string) string {
	candidate := orPlaceholder(candidateName, placeholderCandidate)
	treasurer := orPlaceholder(treasurerName, placeholderTreasurer)
	address := orPlaceholder(campaignAddress, placeholderAddress)

	switch channel {
	case ChannelPrint:
		return fmt.Sprintf("Paid for by the Committee to Elect %s. %s, Treasurer. %s. "+
			"NOTICE: IT IS A VIOLATION OF STATE LAW (CHAPTERS 392 AND 393, TRANSPORTATION CODE) "+
			"TO PLACE THIS SIGN IN THE RIGHT-OF-WAY OF A HIGHWAY.",
			candidate, treasurer, address)
	case ChannelSMS:
		return fmt.Sprintf("Paid for by the Committee to Elect %s (%s, Treasurer). "+
			"Msg&data rates may apply. Reply STOP to opt-out.",
			candidate, treasurer)
	case ChannelRadio:
		return fmt.Sprintf("Paid for by the Committee to Elect %s. %s, Treasurer. "+
			"This message was approved by %s.",
			candidate, treasurer, candidate)
	case ChannelTV:
		return fmt.Sprintf("Paid for by the Committee to Elect %s. %s, Treasurer. %s. "+
			"I'm %s and I approved this message.",
			candidate, treasurer, address, candidate)
	default:
		// digital, and the fallback for anything unrecognized
		return fmt.Sprintf("Paid for by the Committee to Elect %s. %s, Treasurer. %s. "+
			"Not authorized by any other candidate or candidate's committee.",
			candidate, treasurer, address)
	}
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
